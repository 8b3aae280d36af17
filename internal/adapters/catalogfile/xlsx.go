// Package catalogfile reads the catalog workbook bundled with the app, used
// as product source on first run and when the backend is unreachable. The
// records feed the same normalizer path as network responses.
package catalogfile

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/modashop/internal/domain"
)

// Column layout of the first sheet, header row included:
// id | name | description | price | category | brand | gender | size | color | thumbnail | stock
const numColumns = 11

func Load(path string) ([]domain.RawProduct, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("planilla sin hojas")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var out []domain.RawProduct
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rec, ok := parseRow(row)
		if !ok {
			log.Warn().Int("fila", i+1).Msg("fila de catálogo inválida, salteada")
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseRow(row []string) (domain.RawProduct, bool) {
	padded := make([]string, numColumns)
	copy(padded, row)
	for i := range padded {
		padded[i] = strings.TrimSpace(padded[i])
	}

	if padded[0] == "" || padded[1] == "" {
		return domain.RawProduct{}, false
	}
	price, err := strconv.ParseFloat(padded[3], 64)
	if err != nil || price < 0 {
		return domain.RawProduct{}, false
	}

	rec := domain.RawProduct{
		ID:          padded[0],
		Name:        padded[1],
		Description: padded[2],
		Price:       price,
		Category:    padded[4],
		Brand:       padded[5],
		Gender:      padded[6],
		Size:        padded[7],
		Color:       padded[8],
		Thumbnail:   padded[9],
	}
	if padded[10] != "" {
		if stock, err := strconv.Atoi(padded[10]); err == nil && stock >= 0 {
			rec.Stock = &stock
		}
	}
	return rec, true
}
