package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Workbook WorkbookConfig
	OCR      OCRConfig
	Extract  ExtractConfig
	Report   ReportConfig
	Archive  ArchiveConfig
}

// WorkbookConfig holds configuration for the shift workbook
type WorkbookConfig struct {
	Path          string
	TemplateSheet string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract   string
	Lang        string
	PSM         int
	TessdataDir string
	LayoutPath  string
	WorkDir     string
	Timeout     time.Duration
}

// ExtractConfig holds field normalization configuration
type ExtractConfig struct {
	ClavePrefix string
}

// ReportConfig holds report finalization configuration
type ReportConfig struct {
	Converter string
	OutputDir string
}

// ArchiveConfig holds the local shift archive configuration
type ArchiveConfig struct {
	Path string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Workbook: WorkbookConfig{
			Path:          getEnv("FUELCAP_WORKBOOK", "facturas.xlsx"),
			TemplateSheet: getEnv("FUELCAP_TEMPLATE_SHEET", "Plantilla"),
		},
		OCR: OCRConfig{
			Tesseract:   getEnv("TESSERACT_BIN", "tesseract"),
			Lang:        getEnv("TESSERACT_LANG", "spa"),
			PSM:         getEnvAsInt("TESSERACT_PSM", 6),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			LayoutPath:  getEnv("FUELCAP_LAYOUT", "layout.json"),
			WorkDir:     getEnv("FUELCAP_WORKDIR", "./tmp"),
			Timeout:     getEnvAsDuration("FUELCAP_OCR_TIMEOUT", 60*time.Second),
		},
		Extract: ExtractConfig{
			ClavePrefix: getEnv("FUELCAP_CLAVE_PREFIX", "FZN"),
		},
		Report: ReportConfig{
			Converter: getEnv("FUELCAP_PDF_CONVERTER", "soffice"),
			OutputDir: getEnv("FUELCAP_REPORT_DIR", "."),
		},
		Archive: ArchiveConfig{
			Path: getEnv("FUELCAP_ARCHIVE", "fuelcap.db"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
