package cli

import (
	"fmt"
	"io"
)

// printUsage prints usage information.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: todol [flags] <listfile> <action> [parameters]

Actions:
  c, create                  Create (or reset) the list file
  a, add [text...]           Add a task; reads one line from stdin without text
  r, d, remove, del <id>     Remove a task, shifting later tasks down
  l, list                    List tasks
  g, get <id>                Show one task
  t, toggle, done <id>       Toggle a task's completed state
  ch, change <id> <text...>  Replace a task's text
  x, clear                   Remove all completed tasks
  p, pop                     Remove the last task
  i, import <file>           Import tasks from a text or markdown checklist
                               --from <provider>  text or markdown (default: by extension)
                               --dry-run          show what would be imported
                               --pending-only     skip completed items
  history [n|all]            Show removed tasks from the archive (default 10)
  doctor                     Check the list file for problems
  help                       Show this help

Flags:
  -q, --quiet                Suppress non-essential output
  -v, --verbose              Log diagnostics to stderr
  --toon, --pretty, --json   Force an output format
  --color <auto|always|never>
  --archive                  Record removed tasks in the history archive
  --no-lock                  Do not take the advisory lock
`)
}
