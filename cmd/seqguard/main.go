// cmd/seqguard/main.go
package main

import (
	"seqguard/internal/app"
	"seqguard/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
