package wan

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/entities"
)

var (
	headerKeys = table.Row{"#", "NAME", "TYPE", "STATUS", "METHOD", "DNS", "RSSI", "SINR", "RSRP", "RSRQ", "QUALITY"}
)

// FormatTable renders parsed connections as a pretty table.
func FormatTable(connections entities.WANConnections) string {
	t := table.NewWriter()
	t.AppendHeader(headerKeys)

	for _, connection := range connections {
		row := table.Row{
			connection.Number,
			connection.Name,
			connection.Type,
			connection.Status,
			connection.Method,
			strings.Join(connection.DNSServers, ", "),
		}

		cellular, _ := connection.CellularStatus()
		for _, key := range []string{
			constants.FieldRSSI,
			constants.FieldSINR,
			constants.FieldRSRP,
			constants.FieldRSRQ,
			constants.FieldSignalQuality,
		} {
			value, found := cellular.String(key)
			row = append(row, lo.Ternary(found, value, "-"))
		}

		t.AppendRow(row)
	}

	return t.Render()
}
