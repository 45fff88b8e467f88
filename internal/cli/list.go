package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

func runList() error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	if len(a.schedule.Items) == 0 {
		fmt.Fprintln(os.Stdout, "(no items)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTART\tEND\tTITLE\tSUBTASKS")
	for _, it := range a.schedule.Items {
		window := ""
		if it.FullDay() {
			window = " (all day)"
		} else if it.CrossesMidnight() {
			window = " (overnight)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s%s\t%s\t%s\n",
			it.ID, it.Start, it.End, window, it.Title, strings.Join(it.Subtasks, "; "))
	}
	return w.Flush()
}
