package ingestion

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// csvRecord é uma linha do retail_price.csv já convertida. Os nomes de coluna
// seguem o cabeçalho real do dataset, incluindo as grafias "lenght".
type csvRecord struct {
	ProductID                string
	ProductCategoryName      string
	ProductNameLength        int
	ProductDescriptionLength int
	ProductPhotosQty         int
	ProductWeightG           int
	ProductScore             float64
	Volume                   float64

	MonthYear    string
	Qty          int
	TotalPrice   float64
	FreightPrice float64
	UnitPrice    float64
	Customers    int
	Weekday      int
	Weekend      int
	Holiday      int
	Month        int
	Year         int
	S            float64
	LagPrice     float64

	Competitors []competitorObservation
}

// competitorObservation é a tripla preço/score/frete de um concorrente na linha
type competitorObservation struct {
	Number  int
	Price   float64
	Score   float64
	Freight float64
}

// readCSV lê o arquivo inteiro e converte cada linha pelo cabeçalho. Linhas
// com campos obrigatórios ilegíveis são devolvidas na contagem de descartes.
func readCSV(path string) ([]*csvRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "erro ao abrir o CSV %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao ler o cabeçalho do CSV")
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}

	records := make([]*csvRecord, 0)
	discarded := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, errors.Wrap(err, "erro ao ler linha do CSV")
		}

		record, err := parseRow(row, colIdx)
		if err != nil {
			discarded++
			continue
		}
		records = append(records, record)
	}

	return records, discarded, nil
}

func parseRow(row []string, colIdx map[string]int) (*csvRecord, error) {
	field := func(name string) string {
		idx, ok := colIdx[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	record := &csvRecord{
		ProductID:           field("product_id"),
		ProductCategoryName: field("product_category_name"),
		MonthYear:           field("month_year"),
	}
	if record.ProductID == "" {
		return nil, errors.New("linha sem product_id")
	}

	var err error
	// O dataset original grafa "lenght" nesses dois cabeçalhos
	if record.ProductNameLength, err = parseIntField(field("product_name_lenght")); err != nil {
		return nil, err
	}
	if record.ProductDescriptionLength, err = parseIntField(field("product_description_lenght")); err != nil {
		return nil, err
	}
	if record.ProductPhotosQty, err = parseIntField(field("product_photos_qty")); err != nil {
		return nil, err
	}
	if record.ProductWeightG, err = parseIntField(field("product_weight_g")); err != nil {
		return nil, err
	}
	if record.ProductScore, err = parseFloatField(field("product_score")); err != nil {
		return nil, err
	}
	if record.Volume, err = parseFloatField(field("volume")); err != nil {
		return nil, err
	}
	if record.Qty, err = parseIntField(field("qty")); err != nil {
		return nil, err
	}
	if record.TotalPrice, err = parseFloatField(field("total_price")); err != nil {
		return nil, err
	}
	if record.FreightPrice, err = parseFloatField(field("freight_price")); err != nil {
		return nil, err
	}
	if record.UnitPrice, err = parseFloatField(field("unit_price")); err != nil {
		return nil, err
	}
	if record.Customers, err = parseIntField(field("customers")); err != nil {
		return nil, err
	}
	if record.Weekday, err = parseIntField(field("weekday")); err != nil {
		return nil, err
	}
	if record.Weekend, err = parseIntField(field("weekend")); err != nil {
		return nil, err
	}
	if record.Holiday, err = parseIntField(field("holiday")); err != nil {
		return nil, err
	}
	if record.Month, err = parseIntField(field("month")); err != nil {
		return nil, err
	}
	if record.Year, err = parseIntField(field("year")); err != nil {
		return nil, err
	}
	if record.S, err = parseFloatField(field("s")); err != nil {
		return nil, err
	}
	if record.LagPrice, err = parseFloatField(field("lag_price")); err != nil {
		return nil, err
	}

	// Concorrentes são opcionais: a tripla inteira precisa estar presente
	for i := 1; i <= 3; i++ {
		price, errPrice := parseFloatField(field("comp_" + strconv.Itoa(i)))
		score, errScore := parseFloatField(field("ps" + strconv.Itoa(i)))
		freight, errFreight := parseFloatField(field("fp" + strconv.Itoa(i)))

		if errPrice != nil || errScore != nil || errFreight != nil {
			continue
		}

		record.Competitors = append(record.Competitors, competitorObservation{
			Number:  i,
			Price:   price,
			Score:   score,
			Freight: freight,
		})
	}

	return record, nil
}

func parseIntField(s string) (int, error) {
	if s == "" {
		return 0, errors.New("campo numérico vazio")
	}
	// O dataset serializa alguns inteiros como float ("45.0")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "valor inteiro inválido: %q", s)
	}
	return int(f), nil
}

func parseFloatField(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("campo numérico vazio")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "valor numérico inválido: %q", s)
	}
	return f, nil
}
