package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

const DefaultAddr = ":8000"

type Options struct {
	Headless    bool   `long:"headless" env:"PORTFOLIO_HEADLESS" description:"Run the viewer in the terminal instead of a desktop window"`
	Serve       bool   `long:"serve" env:"PORTFOLIO_SERVE" description:"Run the greeting HTTP service instead of the viewer"`
	Addr        string `long:"addr" env:"PORTFOLIO_ADDR" default:":8000" description:"Listen address for --serve"`
	Debug       bool   `long:"debug" env:"PORTFOLIO_DEBUG" description:"Enable verbose debug output"`
	LogToFile   bool   `long:"log-to-file" env:"PORTFOLIO_LOG_TO_FILE" description:"Persist JSONL logs under the user cache directory"`
	LogMaxBytes int64  `long:"log-max-bytes" env:"PORTFOLIO_LOG_MAX_BYTES" default:"5242880" description:"Rotate log files after this many bytes"`
	Version     bool   `long:"version" description:"Print the build version and exit"`
}

var (
	ErrServeWithHeadless = errors.New("--serve and --headless are mutually exclusive")
	ErrInvalidAddr       = errors.New("invalid listen address")
)

// ParseOptions loads .env (when present) and parses the process arguments.
func ParseOptions() (Options, error) {
	_ = godotenv.Load()
	return ParseArgs(os.Args[1:])
}

func ParseArgs(args []string) (Options, error) {
	opts := Options{}
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return Options{}, err
	}
	opts.Addr = strings.TrimSpace(opts.Addr)
	return opts, nil
}

// IsHelp reports whether err is the go-flags help request.
func IsHelp(err error) bool {
	var flagErr *flags.Error
	return errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp
}

func Validate(opts Options) error {
	if opts.Serve && opts.Headless {
		return ErrServeWithHeadless
	}
	if opts.Serve {
		if err := validateAddr(opts.Addr); err != nil {
			return err
		}
	}
	if opts.LogMaxBytes < 0 {
		return fmt.Errorf("log max bytes must not be negative, got %d", opts.LogMaxBytes)
	}
	return nil
}

func validateAddr(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidAddr, addr, err)
	}
	if strings.ContainsAny(host, " /") {
		return fmt.Errorf("%w %q: bad host", ErrInvalidAddr, addr)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("%w %q: port must be 0-65535", ErrInvalidAddr, addr)
	}
	return nil
}
