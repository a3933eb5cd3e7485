// Command avatardemo renders avatars from the command line.
//
// Every flag can also be set from a YAML or JSON file passed with
// --config, or from an AVATAR_ environment variable: --size is
// AVATAR_SIZE and the funny --face flag is AVATAR_FUNNY_FACE.
//
//	avatardemo funny --face 🤓 --text hello -o funny.png
//	avatardemo blank --name "Ada Lovelace" --scheme sunset --shape hexagon
//	avatardemo photo me.jpg --filter sepia --crop-shape circle
//	avatardemo sizes me.jpg --platform discord,linkedin --dir out/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
