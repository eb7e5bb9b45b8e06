package simulate

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"vpp-dispatch/internal/model"
)

// WriteTraceCSV writes a dispatch (or baseline) trace to a CSV file.
func WriteTraceCSV(path string, trace []model.DispatchAction) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"time",
		"hour",
		"period",
		"price",
		"grid_load_kw",
		"pv_output_kw",
		"action",
		"storage_power_kw",
		"grid_purchase_kw",
		"soc_after",
		"cost",
		"revenue",
		"margin",
		"reason",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, a := range trace {
		row := []string{
			strconv.Itoa(i),
			a.Time.Format(time.RFC3339),
			strconv.Itoa(a.Hour),
			string(a.Period),
			fmtFloat(a.Price),
			fmtFloat(a.GridLoadKW),
			fmtFloat(a.PVOutputKW),
			string(a.Action),
			fmtFloat(a.StoragePowerKW),
			fmtFloat(a.GridPurchaseKW),
			fmtFloat(a.SOCAfter),
			fmtFloat(a.Economics.Cost),
			fmtFloat(a.Economics.Revenue),
			fmtFloat(a.Economics.Margin),
			a.Reason,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
