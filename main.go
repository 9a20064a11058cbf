package main

import (
	"log"

	"echofm/cmd"
)

func main() {
	cmd.Execute()
	// If Execute() had a problem, Cobra would have called os.Exit.
	log.Println("Command finished.")
}
