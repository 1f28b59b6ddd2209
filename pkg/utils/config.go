package utils

import "os"

// Config is everything the server reads from the environment. The
// workbook URL and asset base are the only knobs the credits subsystem
// itself needs; the rest is plumbing.
type Config struct {
	Addr          string
	SyncAddr      string
	AssetBase     string
	WorkbookURL   string
	GeralSheet    string
	AutoriasSheet string
}

func LoadConfig() Config {
	cfg := Config{
		Addr:          ":8080",
		SyncAddr:      ":7070",
		GeralSheet:    "Geral",
		AutoriasSheet: "Autorias",
	}

	if v := os.Getenv("FICHAHUB_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FICHAHUB_SYNC_ADDR"); v != "" {
		cfg.SyncAddr = v
	}
	if v := os.Getenv("FICHAHUB_ASSET_BASE"); v != "" {
		cfg.AssetBase = v
	}
	if v := os.Getenv("FICHAHUB_WORKBOOK_URL"); v != "" {
		cfg.WorkbookURL = v
	} else if cfg.AssetBase != "" {
		cfg.WorkbookURL = cfg.AssetBase + "/ficha_creditos.xlsx"
	}
	if v := os.Getenv("FICHAHUB_SHEET_GERAL"); v != "" {
		cfg.GeralSheet = v
	}
	if v := os.Getenv("FICHAHUB_SHEET_AUTORIAS"); v != "" {
		cfg.AutoriasSheet = v
	}

	return cfg
}
