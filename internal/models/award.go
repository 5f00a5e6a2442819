// Package models defines data structures for the award ETL pipeline.
package models

import "time"

// ColumnCount is the number of columns in an NSF award search CSV export.
const ColumnCount = 25

// CSVHeader lists the canonical column names of the award export, in order.
var CSVHeader = []string{
	"AwardNumber",
	"Title",
	"NSFOrganization",
	"Program(s)",
	"StartDate",
	"LastAmendmentDate",
	"PrincipalInvestigator",
	"State",
	"Organization",
	"AwardInstrument",
	"ProgramManager",
	"EndDate",
	"AwardedAmountToDate",
	"Co-PIName(s)",
	"PIEmailAddress",
	"OrganizationStreet",
	"OrganizationCity",
	"OrganizationState",
	"OrganizationZip",
	"OrganizationPhone",
	"NSFDirectorate",
	"ProgramElementCode(s)",
	"ProgramReferenceCode(s)",
	"ARRAAmount",
	"Abstract",
}

// RawAward is a single CSV row with every column kept as a string,
// in export order.
type RawAward struct {
	AwardNumber           string
	Title                 string
	NSFOrganization       string
	Programs              string
	StartDate             string
	LastAmendmentDate     string
	PrincipalInvestigator string
	State                 string
	Organization          string
	AwardInstrument       string
	ProgramManager        string
	EndDate               string
	AwardedAmountToDate   string
	CoPINames             string
	PIEmailAddress        string
	OrganizationStreet    string
	OrganizationCity      string
	OrganizationState     string
	OrganizationZip       string
	OrganizationPhone     string
	NSFDirectorate        string
	ProgramElementCodes   string
	ProgramReferenceCodes string
	ARRAAmount            string
	Abstract              string
}

// Award is a cleaned, typed award record. Amount fields are pointers so
// that sub-threshold awards can carry an explicit null into the output.
type Award struct {
	AwardID               string
	Title                 string
	Programs              []string
	StartDate             time.Time
	EndDate               time.Time
	StartYear             int
	Directorate           string
	Instrument            string
	Organization          string
	Organizations         []string
	OrgCount              int
	PrincipalInvestigator string
	Amount                *float64
	AmountAdjusted        *float64
	ARRAAmount            *float64
	Abstract              string
	AbstractWords         int
	Collaborative         bool
}

// ParquetAward is the flat columnar row written to the output file.
// Slice columns are joined with "; " to keep the schema flat; pointer
// amounts map to optional columns.
type ParquetAward struct {
	AwardID               string   `parquet:"award_id"`
	Title                 string   `parquet:"title"`
	Programs              string   `parquet:"programs"`
	StartDate             int64    `parquet:"start_date,timestamp(millisecond)"`
	EndDate               int64    `parquet:"end_date,timestamp(millisecond)"`
	StartYear             int32    `parquet:"start_year"`
	Directorate           string   `parquet:"directorate"`
	Instrument            string   `parquet:"instrument"`
	Organization          string   `parquet:"organization"`
	Organizations         string   `parquet:"organizations"`
	OrgCount              int32    `parquet:"org_count"`
	PrincipalInvestigator string   `parquet:"principal_investigator"`
	Amount                *float64 `parquet:"amount,optional"`
	AmountAdjusted        *float64 `parquet:"amount_adjusted,optional"`
	ARRAAmount            *float64 `parquet:"arra_amount,optional"`
	Abstract              string   `parquet:"abstract"`
	AbstractWords         int32    `parquet:"abstract_words"`
	Collaborative         bool     `parquet:"collaborative"`
}
