// profiler serves an interactive professional profile dashboard.
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/pakomoretlwe/profiler/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
