package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/cespare/decimalclock/dectime"
	"github.com/cespare/subcmd"
	"golang.org/x/sys/unix"
)

var cmds = []subcmd.Command{
	{
		Name:        "now",
		Description: "print the current decimal time",
		Do:          cmdNow,
	},
	{
		Name:        "bar",
		Description: "print the decimal time on every tick (for status bars)",
		Do:          cmdBar,
	},
	{
		Name:        "from",
		Description: "convert a standard time of day to decimal time",
		Do:          cmdFrom,
	},
	{
		Name:        "to",
		Description: "convert a decimal time to a standard time of day",
		Do:          cmdTo,
	},
}

func main() {
	log.SetFlags(0)
	subcmd.Run(cmds)
}

func cmdNow(args []string) {
	fs := flag.NewFlagSet("now", flag.ExitOnError)
	offset := fs.Int("t", 0, "Offset from UTC in whole hours")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage:

  dectool now [-t offset]

The now command prints the current decimal time once.
`)
	}
	fs.Parse(args)

	now, err := dectime.Now(*offset)
	if err != nil {
		log.Fatalln("Cannot read the current time:", err)
	}
	fmt.Println(now)
}

func cmdBar(args []string) {
	fs := flag.NewFlagSet("bar", flag.ExitOnError)
	offset := fs.Int("t", 0, "Offset from UTC in whole hours")
	secs := fs.Bool("secs", false, "Use decimal second resolution")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage:

  dectool bar [flags...]

where the flags are:
`)
		fs.PrintDefaults()
		fmt.Fprint(os.Stderr, `
The bar command prints the decimal time on its own line at the start of every
decimal minute (or, with -secs, every decimal second). Unlike decclock, it
rereads the system clock on every tick, so it never drifts.
`)
	}
	fs.Parse(args)

	resolution := dectime.Minute
	if *secs {
		resolution = dectime.Second
	}
	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()
	for {
		ms, err := dectime.EpochMillis()
		if err != nil {
			log.Fatalln("Cannot read the current time:", err)
		}
		local := dectime.LocalMillis(ms, *offset)
		fmt.Println(formatBar(dectime.FromMillis(ms, *offset), resolution))
		timer := time.NewTimer(untilNext(local, resolution))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func formatBar(t dectime.Time, resolution time.Duration) string {
	if resolution == dectime.Second {
		return t.String()
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// untilNext returns how long after localMillis the next multiple of
// resolution begins.
func untilNext(localMillis int64, resolution time.Duration) time.Duration {
	unit := resolution.Milliseconds()
	return time.Duration(unit-localMillis%unit) * time.Millisecond
}

func cmdFrom(args []string) {
	fs := flag.NewFlagSet("from", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage:

  dectool from <time>

The from command converts a standard 24-hour time of day, written as HH:MM:SS
or HH:MM, into decimal time.
`)
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	t, err := standardToDecimal(fs.Arg(0))
	if err != nil {
		log.Fatalln("Error:", err)
	}
	fmt.Println(t)
}

func standardToDecimal(s string) (dectime.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		h, m, sec := t.Clock()
		ms := int64(h)*dectime.MillisPerHour + int64(m)*60_000 + int64(sec)*1000
		return dectime.FromMillis(ms, 0), nil
	}
	return dectime.Time{}, fmt.Errorf("bad time of day %q: want HH:MM:SS or HH:MM", s)
}

func cmdTo(args []string) {
	fs := flag.NewFlagSet("to", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage:

  dectool to <decimal time>

The to command converts a decimal time, written as H:MM:SS, into the standard
24-hour time of day at which that decimal second begins (truncated to the
second).
`)
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	s, err := decimalToStandard(fs.Arg(0))
	if err != nil {
		log.Fatalln("Error:", err)
	}
	fmt.Println(s)
}

func decimalToStandard(s string) (string, error) {
	t, err := dectime.Parse(s)
	if err != nil {
		return "", err
	}
	midnight := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(t.Millis()) * time.Millisecond).Format("15:04:05"), nil
}
