// Command workload-publisher публикует событие тренировки в очередь нагрузки
// или печатает JWT для вызова API.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/amangusss/trainer-workload/internal/lib/rabbitmq"
	"github.com/amangusss/trainer-workload/internal/tools/eventpublisher"
)

func main() {
	cfg, err := eventpublisher.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("parse flags: %v", err)
	}

	if cfg.TokenSecret != "" {
		if err := eventpublisher.Token(cfg, os.Stdout); err != nil {
			exitf("generate token: %v", err)
		}
		return
	}

	conn, err := rabbitmq.Connect(cfg.URL, 1, 0)
	if err != nil {
		exitf("connect: %v", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		exitf("open channel: %v", err)
	}
	defer ch.Close()

	if err := eventpublisher.Run(cfg, rabbitmq.NewPublisher(ch, cfg.Exchange), os.Stdout); err != nil {
		exitf("%v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
