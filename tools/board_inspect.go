package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Dumps the book catalog of an on-disk instance as a table.
// Only useful when the server runs with BOOK_DB_PATH set; the default
// in-memory catalog has nothing to inspect after the process exits.
func main() {
	dbPath := flag.String("db", "./data/books", "Path to badger DB")
	prefix := flag.String("prefix", "book:", "Prefix to scan")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	color.New(color.BgBlack, color.FgGreen).Printf("  ====== Book catalog (%s) ======\n", *dbPath)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Title", "Author", "ISBN", "Price", "Created", "Available"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	type bookRow struct {
		ID          string  `json:"id"`
		Title       string  `json:"title"`
		Author      string  `json:"author"`
		ISBN        string  `json:"isbn"`
		Price       float64 `json:"price"`
		CreatedDate int64   `json:"created_date"`
		Available   bool    `json:"available"`
	}

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var row bookRow
				if err := json.Unmarshal(v, &row); err != nil {
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				shortID := row.ID
				if len(shortID) > 8 {
					shortID = shortID[:8]
				}
				table.Append([]string{
					shortID,
					row.Title,
					row.Author,
					row.ISBN,
					fmt.Sprintf("%.2f", row.Price),
					time.Unix(0, row.CreatedDate).Format("2006-01-02 15:04"),
					fmt.Sprintf("%t", row.Available),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning: ", err)
	}

	table.Render()
}
