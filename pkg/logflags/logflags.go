package logflags

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var decode = false
var listing = false
var config = false

var logOut io.WriteCloser

func makeLogger(level logrus.Level, fields Fields) Logger {
	if lf := loggerFactory; lf != nil {
		return lf(level, fields, logOut)
	}
	logger := logrus.New().WithFields(logrus.Fields(fields))
	logger.Logger.Formatter = textFormatterInstance
	if logOut != nil {
		logger.Logger.Out = logOut
	}
	logger.Logger.Level = level
	return &logrusLogger{logger}
}

func makeFlaggableLogger(flag bool, fields Fields) Logger {
	if flag {
		return makeLogger(logrus.DebugLevel, fields)
	}
	return makeLogger(logrus.ErrorLevel, fields)
}

// Decode returns true if the raw input of decode requests should be logged.
func Decode() bool {
	return decode
}

// DecodeLogger returns a logger for the decode command.
func DecodeLogger() Logger {
	return makeFlaggableLogger(decode, Fields{"layer": "decode"})
}

// Listing returns true if the listing package should log.
func Listing() bool {
	return listing
}

// ListingLogger returns a logger for the listing package.
func ListingLogger() Logger {
	return makeFlaggableLogger(listing, Fields{"layer": "listing"})
}

// Config returns true if loading and saving the configuration file should
// be logged.
func Config() bool {
	return config
}

func ConfigLogger() Logger {
	return makeFlaggableLogger(config, Fields{"layer": "config"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets logging flags based on the contents of logstr.
// If logDest is not empty logs will be redirected to the file descriptor or
// file path specified by logDest.
func Setup(logFlag bool, logstr, logDest string) error {
	if logDest != "" {
		n, err := strconv.Atoi(logDest)
		if err == nil {
			logOut = os.NewFile(uintptr(n), "m68kdis-logs")
		} else {
			fh, err := os.Create(logDest)
			if err != nil {
				return fmt.Errorf("could not create log file: %v", err)
			}
			logOut = fh
		}
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if !logFlag {
		log.SetOutput(io.Discard)
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "listing"
	}
	v := strings.Split(logstr, ",")
	for _, logcmd := range v {
		switch logcmd {
		case "decode":
			decode = true
		case "listing":
			listing = true
		case "config":
			config = true
		default:
			fmt.Fprintf(os.Stderr, "Warning: unknown log output value %q, run 'm68kdis help log' for usage.\n", logcmd)
		}
	}
	return nil
}

// Close closes the logger output.
func Close() {
	if logOut != nil {
		logOut.Close()
	}
}

// textFormatter is a simplified version of logrus.TextFormatter that
// doesn't make logs unreadable when they are output to a text file or to a
// terminal that doesn't support colors.
type textFormatter struct {
}

var textFormatterInstance = &textFormatter{}

func (f *textFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "layer" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	b.WriteString(entry.Time.Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(entry.Level.String())
	b.WriteByte(' ')
	if layer, ok := entry.Data["layer"]; ok {
		fmt.Fprint(b, layer)
		b.WriteByte(' ')
	}
	for _, k := range keys {
		fmt.Fprintf(b, "%s=%v ", k, entry.Data[k])
	}
	b.WriteString(entry.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}
