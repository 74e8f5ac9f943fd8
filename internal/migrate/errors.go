package migrate

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownProviderError reports an import source name that no provider handles.
type UnknownProviderError struct {
	Name      string
	Available []string
}

func (e *UnknownProviderError) Error() string {
	names := append([]string(nil), e.Available...)
	sort.Strings(names)
	return fmt.Sprintf("unknown import source %q (use --from %s)", e.Name, strings.Join(names, "|"))
}
