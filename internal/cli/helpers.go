package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/query"
	"github.com/spf13/cobra"
)

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

// filterFromFlags builds a query.Filter from the shared list flags.
func filterFromFlags(cmd *cobra.Command) query.Filter {
	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")
	clientID, _ := cmd.Flags().GetString("client")
	return query.Filter{Search: search, Status: status, ClientID: clientID}
}

// sortFromFlags builds a query.Sort from the shared list flags.
func sortFromFlags(cmd *cobra.Command, defaultField string) query.Sort {
	field, _ := cmd.Flags().GetString("sort")
	if field == "" {
		field = defaultField
	}
	dir := query.Asc
	if desc, _ := cmd.Flags().GetBool("desc"); desc {
		dir = query.Desc
	}
	return query.Sort{Field: field, Direction: dir}
}

func addListFlags(cmd *cobra.Command, defaultSort string) {
	cmd.Flags().String("search", "", "Filter by search text")
	cmd.Flags().String("status", query.StatusAll, "Filter by status")
	cmd.Flags().String("sort", defaultSort, "Sort field")
	cmd.Flags().Bool("desc", false, "Sort descending")
}

// parseItemSpec parses a "description:quantity:rate" flag value. The
// description may itself contain colons; quantity and rate are the last
// two segments.
func parseItemSpec(spec string) (domain.LineItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 {
		return domain.LineItem{}, fmt.Errorf("invalid item %q: expected description:quantity:rate", spec)
	}
	rateStr := parts[len(parts)-1]
	qtyStr := parts[len(parts)-2]
	desc := strings.Join(parts[:len(parts)-2], ":")

	qty, err := strconv.ParseFloat(qtyStr, 64)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("invalid quantity %q: %w", qtyStr, err)
	}
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("invalid rate %q: %w", rateStr, err)
	}
	return domain.LineItem{Description: desc, Quantity: qty, Rate: rate}, nil
}
