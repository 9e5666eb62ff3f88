//
// main.go
//
// md5sum prints the MD5 digest of each argument, or of standard input when
// no arguments are given.
//

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"
	"github.com/zeebo/md5"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitAlloc    = 2
	exitRead     = 3
	exitUsage    = 64
)

var errAlloc = errors.New("failed to allocate message")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type message struct {
	label string
	data  []byte
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "md5sum: ", 0)

	fs := flag.NewFlagSet("md5sum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	trim := fs.Bool("trim", false, "strip one trailing newline from standard input")
	stats := fs.Bool("stats", false, "print a table of lengths, blocks and digests")
	check := fs.String("check", "", "compare the digest against `hex`")
	prefix := fs.Bool("prefix", false, "print \"MD5 Hash: \" before each digest")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	var msgs []message
	if fs.NArg() == 0 {
		data, err := readMessage(stdin)
		if err != nil {
			logger.Print(err)
			if errors.Cause(err) == errAlloc {
				return exitAlloc
			}
			return exitRead
		}
		if *trim {
			data = trimNewline(data)
		}
		msgs = append(msgs, message{label: "-", data: data})
	} else {
		for _, arg := range fs.Args() {
			msgs = append(msgs, message{label: arg, data: []byte(arg)})
		}
	}

	var expected md5.Digest
	if len(*check) > 0 {
		if len(msgs) != 1 {
			logger.Print("-check needs exactly one message")
			return exitUsage
		}
		d, err := md5.ParseDigest(*check)
		if err != nil {
			logger.Print(err)
			return exitUsage
		}
		expected = d
	}

	digests := make([]md5.Digest, len(msgs))
	for i, msg := range msgs {
		digests[i] = md5.Sum(msg.data)
		if *prefix {
			fmt.Fprintf(stdout, "MD5 Hash: %v\n", digests[i])
		} else {
			fmt.Fprintf(stdout, "%v\n", digests[i])
		}
	}

	if *stats {
		printStats(stdout, msgs, digests)
	}

	if len(*check) > 0 && digests[0] != expected {
		logger.Printf("digest mismatch: got %v, want %v", digests[0], expected)
		return exitMismatch
	}
	return exitOK
}

// readMessage drains r into a single message. The buffer grows
// geometrically, so reading n bytes costs O(n) copying overall.
func readMessage(r io.Reader) (data []byte, err error) {
	var buf bytes.Buffer

	defer func() {
		if v := recover(); v != nil {
			if v != bytes.ErrTooLarge {
				panic(v)
			}
			data, err = nil, errAlloc
		}
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, "error reading from stdin")
	}
	return buf.Bytes(), nil
}

func trimNewline(data []byte) []byte {
	if bytes.HasSuffix(data, []byte("\r\n")) {
		return data[:len(data)-2]
	}
	return bytes.TrimSuffix(data, []byte("\n"))
}

func printStats(w io.Writer, msgs []message, digests []md5.Digest) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Message").SetAlign(tabulate.ML)
	tab.Header("Bytes").SetAlign(tabulate.MR)
	tab.Header("Blocks").SetAlign(tabulate.MR)
	tab.Header("Digest").SetAlign(tabulate.ML)

	for i, msg := range msgs {
		label := msg.label
		if len(label) > 32 {
			label = label[:29] + "..."
		}

		row := tab.Row()
		row.Column(strconv.Quote(label))
		row.Column(strconv.Itoa(len(msg.data)))
		row.Column(strconv.FormatUint(md5.PaddedLen(uint64(len(msg.data)))/md5.BlockSize, 10))
		row.Column(digests[i].String())
	}

	tab.Print(w)
}
