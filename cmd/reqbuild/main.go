// reqbuild renders a Messages API request as canonical JSON on stdout.
// The output is deterministic (sorted keys), so it is suitable for golden
// files and cache keys.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jordanvaneetveldt/claudewire/internal/config"
)

func main() {
	configPath := flag.String("config", "preset.yaml", "Path to the request preset file")
	prompt := flag.String("prompt", "", "User prompt (read from stdin when empty)")
	model := flag.String("model", "", "Override the preset's model")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *model != "" {
		cfg.Model = *model
	}

	text := *prompt
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		text = strings.TrimRight(string(data), "\n")
	}

	req := cfg.NewRequest(text)
	out, err := req.Serialize()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(out))
}
