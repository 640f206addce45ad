package main

import "github.com/aussiebroadwan/clientdesk/internal/deskctl"

var BuildVersion = "dev"

func main() {
	deskctl.Version = BuildVersion
	deskctl.Execute()
}
