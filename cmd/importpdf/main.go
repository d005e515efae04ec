// Command importpdf imports one or more invoice PDFs from disk.
// Usage: importpdf [-replace] file.pdf [file2.pdf ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"telebill/internal/config"
	"telebill/internal/pdftext"
	"telebill/internal/repository/postgres"
	"telebill/internal/service"
)

func main() {
	replace := flag.Bool("replace", false, "replace invoices that were already imported")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: importpdf [-replace] file.pdf [file2.pdf ...]")
	}

	if err := run(flag.Args(), *replace); err != nil {
		log.Fatal(err)
	}
}

func run(paths []string, replace bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	svc := service.NewInvoiceService(postgres.NewInvoiceRepo(db), pdftext.NewReader(), nil, cfg)

	ctx := context.Background()
	failures := 0
	for _, path := range paths {
		result, err := svc.ImportFile(ctx, path, replace)
		if err != nil {
			failures++
			log.Printf("importpdf: %s: %v", path, err)
			continue
		}
		log.Printf("importpdf: %s -> %s invoice %s (id %d, total %.2f)",
			path, result.Record.Metadata.Carrier, result.Record.Metadata.InvoiceNumber,
			result.ID, result.Record.Metadata.TotalAmount)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d imports failed", failures, len(paths))
	}
	return nil
}
