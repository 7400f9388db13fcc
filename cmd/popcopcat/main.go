// Command popcopcat frames stdin as a single popcop frame on stdout, or
// deframes popcop frames from stdin and writes their payloads to stdout —
// a minimal worked example of the transport package's Parser and
// StreamEmitter, in the spirit of netcat, without real serial hardware.
// Decoded frames are printed as "type=<n> payload=<hex>" lines.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/trigrass2/popcop/link/config"
	"github.com/trigrass2/popcop/logger"
	"github.com/trigrass2/popcop/transport"
)

func main() {
	var (
		decode     = flag.Bool("decode", false, "deframe stdin instead of framing it")
		typeCode   = flag.Uint("type", 0, "frame type code to use when framing (0-255)")
		configPath = flag.String("config", "", "optional TOML config file (see link/config)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "popcopcat:", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	logger.SetLevel(config.ParseLogLevel(cfg.LogLevel))

	var err error
	if *decode {
		err = runDecode(cfg.ParserCapacity)
	} else {
		err = runEncode(byte(*typeCode))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "popcopcat:", err)
		os.Exit(1)
	}
}

func runEncode(typeCode byte) error {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	emitter, err := transport.NewStreamEmitter(typeCode, func(b byte) error {
		return out.WriteByte(b)
	})
	if err != nil {
		return err
	}

	if _, err := io.Copy(byteWriter{emitter}, os.Stdin); err != nil {
		_ = emitter.Abort()
		return err
	}

	return emitter.Close()
}

// byteWriter adapts a StreamEmitter to io.Writer for io.Copy.
type byteWriter struct {
	emitter *transport.StreamEmitter
}

func (w byteWriter) Write(p []byte) (int, error) {
	if err := w.emitter.WriteBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func runDecode(capacity int) error {
	parser, err := transport.NewParser(capacity)
	if err != nil {
		return err
	}

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for {
		b, err := in.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		frame, extraneous := parser.Feed(b)
		if extraneous != nil {
			logger.Debug("popcopcat: discarding extraneous bytes", "count", len(extraneous))
		}
		if frame != nil {
			fmt.Fprintf(out, "type=%d payload=%x\n", frame.TypeCode, frame.Payload)
		}
	}
}
