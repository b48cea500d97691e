package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/navijation/njheap/heap"
	"github.com/navijation/njheap/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

var errMissingSeparator = errors.New("entry must be in \"priority: payload\" format")

type sortArgs struct {
	Order        heap.Order
	Limit        util.Optional[uint64]
	WithPriority bool
	WithIDs      bool
	Strict       bool
}

type sortEntry struct {
	id      uuid.UUID
	payload string
}

func sortEntries(_ context.Context, cmd *cli.Command, log logrus.FieldLogger, in io.Reader, out io.Writer) error {
	if cmd.Args().Len() != 0 {
		return errors.New("usage: sort [options] < entries")
	}

	order, err := heap.ParseOrder(cmd.String("order"))
	if err != nil {
		return errors.Wrap(err, "invalid --order")
	}

	args := sortArgs{
		Order:        order,
		WithPriority: cmd.Bool("with-priority"),
		WithIDs:      cmd.Bool("ids"),
		Strict:       cmd.Bool("strict"),
	}
	if cmd.IsSet("limit") {
		args.Limit = util.Some(cmd.Uint("limit"))
	}

	return sortLines(in, out, log, args)
}

func sortLines(in io.Reader, out io.Writer, log logrus.FieldLogger, args sortArgs) error {
	entries := heap.New[sortEntry](args.Order)

	scanner := bufio.NewScanner(in)
	var lineNumber int
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		priority, payload, err := parseEntry(line)
		if err != nil {
			err = errors.Wrapf(err, "line %d", lineNumber)
			if args.Strict {
				return err
			}
			log.WithField("line", lineNumber).WithError(err).Warn("skipping malformed entry")
			continue
		}

		entry := sortEntry{payload: payload}
		if args.WithIDs {
			entry.id = uuid.New()
		}
		entries.Push(entry, priority)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read entries")
	}

	log.WithFields(logrus.Fields{
		"entries": entries.Len(),
		"order":   args.Order,
	}).Debug("draining heap")

	sorted := entries.DrainEntries()
	if limit, ok := args.Limit.Unpack(); ok {
		sorted = util.Take2(sorted, limit)
	}

	writer := bufio.NewWriter(out)
	for entry, priority := range sorted {
		if args.WithIDs {
			fmt.Fprintf(writer, "%s ", entry.id)
		}
		if args.WithPriority {
			fmt.Fprintf(writer, "%d: ", priority)
		}
		fmt.Fprintln(writer, entry.payload)
	}
	return writer.Flush()
}

func parseEntry(line string) (priority int32, payload string, _ error) {
	fragments := strings.SplitN(line, ":", 2)
	if len(fragments) != 2 {
		return 0, "", errMissingSeparator
	}

	value, err := strconv.ParseInt(strings.TrimSpace(fragments[0]), 10, 32)
	if err != nil {
		return 0, "", errors.Wrap(err, "invalid priority")
	}

	return int32(value), strings.TrimSpace(fragments[1]), nil
}
