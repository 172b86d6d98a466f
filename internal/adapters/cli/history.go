package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/intopia-go/internal/domain/history"
	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

// recordDocument is the JSON import layout for one period record. Map keys use
// the canonical "REGION/product/grade" and "REGION/product" forms.
type recordDocument struct {
	Period           int                  `json:"period"`
	Profit           float64              `json:"profit"`
	Cash             float64              `json:"cash"`
	Inventory        map[string]int       `json:"inventory"`
	OwnSales         map[string]int       `json:"own_sales"`
	MarketSales      map[string]int       `json:"market_sales"`
	CompetitorPrices map[string][]float64 `json:"competitor_prices"`
	Patents          map[string]int       `json:"patents"`
}

// newHistoryCommand creates the history command group
func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage stored period records and published rankings",
	}
	cmd.AddCommand(newHistoryImportCommand())
	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryRankingCommand())
	return cmd
}

func newHistoryImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import one or more period records from a JSON file",
		Long: `Imports period records from a JSON file holding either a single record
object or an array of them. Records replace any stored record for the same
period. Missing fields default to zero/empty at import time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDependencies()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			docs, err := decodeRecordDocuments(data)
			if err != nil {
				return err
			}

			for _, doc := range docs {
				record, err := toRecord(doc)
				if err != nil {
					return fmt.Errorf("period %d: %w", doc.Period, err)
				}
				if err := deps.history.Save(cmd.Context(), record); err != nil {
					return err
				}
			}
			cmd.Printf("Imported %d record(s)\n", len(docs))
			return nil
		},
	}
}

func newHistoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored period records",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDependencies()
			if err != nil {
				return err
			}
			records, err := deps.history.FindAll(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				cmd.Println("No records stored.")
				return nil
			}
			cmd.Printf("%-8s %14s %16s %10s %12s\n", "PERIOD", "PROFIT", "CASH", "SOLD", "COMPETITORS")
			for _, record := range records {
				var sold int
				for _, qty := range record.OwnSales {
					sold += qty
				}
				cmd.Printf("%-8d %14.2f %16.2f %10d %12d\n",
					record.Period, record.Profit, record.Cash, sold, len(record.CompetitorPrices))
			}
			return nil
		},
	}
}

func newHistoryRankingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Manage published per-period ranking scores",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <period> <score>",
		Short: "Store the published ranking score for a period",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid period %q: %w", args[0], err)
			}
			score, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[1], err)
			}
			deps, err := buildDependencies()
			if err != nil {
				return err
			}
			ranking := &history.PublishedRanking{Period: period, Score: score}
			if err := deps.history.SaveRanking(cmd.Context(), ranking); err != nil {
				return err
			}
			cmd.Printf("Stored ranking %.4f for period %d\n", score, period)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored published rankings",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDependencies()
			if err != nil {
				return err
			}
			rankings, err := deps.history.FindRankings(cmd.Context())
			if err != nil {
				return err
			}
			if len(rankings) == 0 {
				cmd.Println("No rankings stored.")
				return nil
			}
			cmd.Printf("%-8s %10s\n", "PERIOD", "SCORE")
			for _, ranking := range rankings {
				cmd.Printf("%-8d %10.4f\n", ranking.Period, ranking.Score)
			}
			return nil
		},
	})

	return cmd
}

// decodeRecordDocuments accepts a single object or an array.
func decodeRecordDocuments(data []byte) ([]recordDocument, error) {
	var docs []recordDocument
	if err := json.Unmarshal(data, &docs); err == nil {
		return docs, nil
	}
	var doc recordDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse record JSON: %w", err)
	}
	return []recordDocument{doc}, nil
}

func toRecord(doc recordDocument) (*history.Record, error) {
	record := &history.Record{
		Period:           doc.Period,
		Profit:           doc.Profit,
		Cash:             doc.Cash,
		Inventory:        map[market.Segment]int{},
		OwnSales:         map[market.Segment]int{},
		MarketSales:      map[market.Plant]int{},
		CompetitorPrices: doc.CompetitorPrices,
		Patents:          map[market.Plant]int{},
	}
	for key, qty := range doc.Inventory {
		seg, err := market.ParseSegment(key)
		if err != nil {
			return nil, err
		}
		record.Inventory[seg] = qty
	}
	for key, qty := range doc.OwnSales {
		seg, err := market.ParseSegment(key)
		if err != nil {
			return nil, err
		}
		record.OwnSales[seg] = qty
	}
	for key, qty := range doc.MarketSales {
		plant, err := market.ParsePlant(key)
		if err != nil {
			return nil, err
		}
		record.MarketSales[plant] = qty
	}
	for key, level := range doc.Patents {
		plant, err := market.ParsePlant(key)
		if err != nil {
			return nil, err
		}
		record.Patents[plant] = level
	}
	record.ApplyDefaults()
	return record, nil
}
