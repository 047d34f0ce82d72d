// cmd/greedyasm/main.go
package main

import (
	"greedyasm/internal/app"
	"greedyasm/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
