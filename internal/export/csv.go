package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/ecosim/internal/population"
)

var csvHeader = []string{"year", "rabbits", "wolves"}

// WriteCSV writes one row per year with a header row.
func WriteCSV(w io.Writer, res population.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range res.Records {
		row := []string{
			strconv.Itoa(rec.Year),
			strconv.Itoa(rec.Rabbits),
			strconv.Itoa(rec.Wolves),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
