package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	chatproxycmder "github.com/papercomputeco/chatproxy/cmd/chatproxy"
)

func main() {
	cmd := chatproxycmder.NewChatproxyCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
