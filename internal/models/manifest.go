package models

import "time"

// Run statuses recorded in the manifest.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// StageCounts records how many rows each pipeline stage saw or removed.
type StageCounts struct {
	Read          int `json:"read"`
	Duplicates    int `json:"duplicates"`
	EmptyAbstract int `json:"emptyAbstract"`
	Merged        int `json:"merged"`
	NulledAmounts int `json:"nulledAmounts"`
	Written       int `json:"written"`
}

// Manifest is the record of one ETL run, written next to the output file.
type Manifest struct {
	InputFile   string      `json:"inputFile"`
	CPIFile     string      `json:"cpiFile"`
	OutputFile  string      `json:"outputFile"`
	Checksum    string      `json:"checksum"`
	BaseYear    int         `json:"baseYear"`
	Counts      StageCounts `json:"counts"`
	ProcessedAt time.Time   `json:"processedAt"`
	Status      string      `json:"status"`
}
