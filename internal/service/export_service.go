package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"comment-threads/internal/domain"
	"comment-threads/internal/logger"
	"comment-threads/internal/metrics"
	"comment-threads/internal/thread"
)

// Export formats.
const (
	FormatNDJSON = "ndjson"
	FormatCSV    = "csv"
)

// flushEvery is how many records are written between flushes to the client.
const flushEvery = 100

// csvHeader lists the CSV export columns in order.
var csvHeader = []string{"id", "parent_id", "depth", "author_id", "author_name", "is_admin_comment", "body", "created_at"}

// ExportRecord is one comment in an NDJSON export. Depth is absolute: roots are 0.
type ExportRecord struct {
	thread.Comment
	Depth int `json:"depth"`
}

// streamWriterAdapter lets encoders write into a StreamWriter.
type streamWriterAdapter struct {
	w StreamWriter
}

func (a streamWriterAdapter) Write(p []byte) (int, error) {
	if err := a.w.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// IsValidFormat reports whether format is a supported export format.
func IsValidFormat(format string) bool {
	return format == FormatNDJSON || format == FormatCSV
}

// StreamThread writes every comment on item to writer in display order,
// roots newest first and each reply chain oldest first. It returns the
// number of records written.
func (s *CommentService) StreamThread(ctx context.Context, item domain.ContentItem, format string, writer StreamWriter) (int, error) {
	if !IsValidFormat(format) {
		return 0, &domain.MalformedInputError{Index: -1, Field: "format", Reason: "format must be one of: ndjson, csv"}
	}

	forest, _, err := s.loadForest(ctx, item)
	if err != nil {
		return 0, err
	}

	kind := string(item.Kind)
	metrics.StartStreamingExport(kind)
	timer := metrics.NewTimer()

	var count int
	if format == FormatCSV {
		count, err = writeCSV(ctx, forest, writer)
	} else {
		count, err = writeNDJSON(ctx, forest, writer)
	}
	writer.Flush()

	result := "success"
	if err != nil {
		result = "error"
		logger.WithContentItem(kind, item.ID).Warn("Thread export aborted",
			slog.String("format", format),
			slog.Int("written", count),
			slog.String("error", err.Error()))
	}
	metrics.EndStreamingExport(kind, format, result, timer.Seconds(), count)

	return count, err
}

func writeNDJSON(ctx context.Context, forest *thread.Forest, writer StreamWriter) (int, error) {
	encoder := json.NewEncoder(streamWriterAdapter{w: writer})

	var count int
	err := thread.Walk(forest, func(n *thread.Node, depth int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := encoder.Encode(ExportRecord{Comment: thread.CommentOf(n), Depth: depth}); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		count++
		if count%flushEvery == 0 {
			writer.Flush()
		}
		return nil
	})
	return count, err
}

func writeCSV(ctx context.Context, forest *thread.Forest, writer StreamWriter) (int, error) {
	w := csv.NewWriter(streamWriterAdapter{w: writer})

	if err := w.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	var count int
	err := thread.Walk(forest, func(n *thread.Node, depth int) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		parent := ""
		if n.Record.ParentID != nil {
			parent = strconv.FormatInt(*n.Record.ParentID, 10)
		}
		record := []string{
			strconv.FormatInt(n.Record.ID, 10),
			parent,
			strconv.Itoa(depth),
			csvText(n.Record.AuthorID),
			csvText(n.Author.DisplayName),
			strconv.FormatBool(n.IsAdminComment),
			csvText(n.Record.Body),
			n.Record.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		count++
		if count%flushEvery == 0 {
			w.Flush()
			writer.Flush()
		}
		return nil
	})

	w.Flush()
	if err == nil {
		err = w.Error()
	}
	return count, err
}

// csvText prefixes user text that spreadsheet tools would evaluate as a formula.
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}
