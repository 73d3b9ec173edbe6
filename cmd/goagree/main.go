// Command goagree compares homology-based and prediction-based GO annotations
// across the species of a master index and writes a comparative report.
package main

import (
	"goagree/internal/app"
	"goagree/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
