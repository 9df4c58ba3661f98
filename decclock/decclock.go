package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/cespare/decimalclock/dectime"
	"golang.org/x/sys/unix"
)

type options struct {
	offset  int
	oneshot bool
}

var errMissingOffset = errors.New("-t must be followed by a number")

// parseArgs handles the command line by hand rather than with package flag:
// --oneshot is a double-dash long flag and unknown arguments are only
// warned about.
func parseArgs(args []string, warn func(format string, v ...any)) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-t":
			if i+1 >= len(args) {
				return opts, errMissingOffset
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 32)
			if err != nil {
				return opts, fmt.Errorf("%q is not a valid integer", args[i])
			}
			opts.offset = int(n)
		case "--oneshot":
			opts.oneshot = true
		default:
			warn("Unknown argument: %s", arg)
		}
	}
	return opts, nil
}

func main() {
	log.SetFlags(0)
	opts, err := parseArgs(os.Args[1:], log.Printf)
	if err != nil {
		log.Fatalln("Error:", err)
	}

	now, err := dectime.Now(opts.offset)
	if err != nil {
		log.Fatalln("Cannot read the current time:", err)
	}
	if opts.oneshot {
		fmt.Println(now)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()
	w := bufio.NewWriter(os.Stdout)
	if err := dectime.Run(ctx, w, now); err != nil {
		log.Fatalln("Error writing to stdout:", err)
	}
	// Leave the shell prompt on a fresh line.
	fmt.Fprintln(w)
	w.Flush()
}
