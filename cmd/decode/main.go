// Command decode turns NOTAM and TAF text into decoded JSON or plain text
// without Kafka. Input comes from the collectors' JSON files, a page of
// concatenated NOTAMs, or a single TAF on the command line.
//
// Usage:
//
//	go run ./cmd/decode -notam-file notam_data.json -icao UAAA
//	go run ./cmd/decode -taf-file taf_data.json -json -output decoded.json
//	go run ./cmd/decode -taf "TAF UAAA 101100Z 1012/1112 32015G25KT 9999 FEW040"
//
// DECODE_ICAO, from the environment or a .env file, sets the default -icao.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/aero-bulletin-etl/internal/adapter/airports"
	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
	"github.com/couchcryptid/aero-bulletin-etl/internal/pipeline"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

const separator = "=============================================="

type options struct {
	notamFile string
	taf       string
	tafFile   string
	icao      string
	asJSON    bool
	output    string
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if err := run(context.Background(), os.Args[1:], os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, "decode:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, logger *slog.Logger) error {
	var opts options
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.StringVar(&opts.notamFile, "notam-file", "", "NOTAM collector JSON file or a text page of NOTAMs")
	fs.StringVar(&opts.taf, "taf", "", "a single TAF message")
	fs.StringVar(&opts.tafFile, "taf-file", "", "TAF collector JSON file")
	fs.StringVar(&opts.icao, "icao", sharedcfg.EnvOrDefault("DECODE_ICAO", ""), "only output bulletins for this aerodrome (default $DECODE_ICAO)")
	fs.BoolVar(&opts.asJSON, "json", false, "write decoded bulletins as JSON")
	fs.StringVar(&opts.output, "output", "", "write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.notamFile == "" && opts.taf == "" && opts.tafFile == "" {
		fs.Usage()
		return errors.New("one of -notam-file, -taf or -taf-file is required")
	}

	var inputs []domain.RawBulletin
	var extra []domain.Airport

	if opts.notamFile != "" {
		notams, err := loadNotamFile(opts.notamFile)
		if err != nil {
			return fmt.Errorf("load %s: %w", opts.notamFile, err)
		}
		inputs = append(inputs, notams...)
	}
	if opts.tafFile != "" {
		tafs, known, err := loadTAFFile(opts.tafFile)
		if err != nil {
			return fmt.Errorf("load %s: %w", opts.tafFile, err)
		}
		inputs = append(inputs, tafs...)
		extra = append(extra, known...)
	}
	if opts.taf != "" {
		inputs = append(inputs, domain.RawBulletin{Kind: domain.BulletinTAF, Raw: opts.taf, Source: "cli"})
	}

	transformer := pipeline.NewTransformer(airports.NewStaticDirectory(extra...), nil, logger)
	decoded := decodeAll(ctx, transformer, inputs, strings.ToUpper(strings.TrimSpace(opts.icao)), logger)
	if len(decoded) == 0 {
		return errors.New("no bulletins decoded")
	}

	out := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if opts.asJSON {
		return writeJSON(out, decoded)
	}
	return writeText(out, decoded)
}

func decodeAll(ctx context.Context, t *pipeline.BulletinTransformer, inputs []domain.RawBulletin, icao string, logger *slog.Logger) []domain.DecodedBulletin {
	out := make([]domain.DecodedBulletin, 0, len(inputs))
	for i, in := range inputs {
		b, err := t.Decode(ctx, in)
		if err != nil {
			logger.Warn("skipping bulletin", "index", i, "kind", in.Kind, "error", err)
			continue
		}
		if icao != "" && b.Location != icao {
			continue
		}
		out = append(out, b)
	}
	return out
}

// notamFile is the NOTAM collector's output format.
type notamFile struct {
	Notams []struct {
		Raw      string `json:"raw"`
		Location string `json:"location"`
	} `json:"notams"`
}

// loadNotamFile accepts the collector JSON or, when the file is not JSON, a
// page of NOTAM text that is split into blocks.
func loadNotamFile(path string) ([]domain.RawBulletin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f notamFile
	if err := json.Unmarshal(data, &f); err == nil {
		out := make([]domain.RawBulletin, 0, len(f.Notams))
		for _, n := range f.Notams {
			out = append(out, domain.RawBulletin{Kind: domain.BulletinNotam, Raw: n.Raw, ICAO: n.Location, Source: path})
		}
		return out, nil
	}

	blocks := domain.SplitNotamBlocks(string(data))
	out := make([]domain.RawBulletin, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, domain.RawBulletin{Kind: domain.BulletinNotam, Raw: b, Source: path})
	}
	return out, nil
}

// tafFile is the TAF collector's output format.
type tafFile struct {
	TafData []struct {
		ICAO string `json:"icao"`
		IATA string `json:"iata"`
		Name string `json:"name"`
		City string `json:"city"`
		Taf  *struct {
			Raw    string `json:"raw"`
			Source string `json:"source"`
		} `json:"taf"`
	} `json:"taf_data"`
}

// loadTAFFile returns the TAFs in the file and the airports the collector
// described, so the directory can name aerodromes it does not know.
func loadTAFFile(path string) ([]domain.RawBulletin, []domain.Airport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var f tafFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse taf file: %w", err)
	}

	var (
		tafs  []domain.RawBulletin
		known []domain.Airport
	)
	for _, item := range f.TafData {
		if item.ICAO != "" && item.Name != "" {
			known = append(known, domain.Airport{ICAO: item.ICAO, IATA: item.IATA, Name: item.Name, City: item.City})
		}
		if item.Taf == nil || strings.TrimSpace(item.Taf.Raw) == "" {
			continue
		}
		tafs = append(tafs, domain.RawBulletin{
			Kind:   domain.BulletinTAF,
			Raw:    item.Taf.Raw,
			Source: item.Taf.Source,
			ICAO:   item.ICAO,
		})
	}
	return tafs, known, nil
}

func writeJSON(w io.Writer, decoded []domain.DecodedBulletin) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(decoded)
}

func writeText(w io.Writer, decoded []domain.DecodedBulletin) error {
	for i, b := range decoded {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", separator, b.HumanReadable); err != nil {
			return err
		}
	}
	return nil
}
