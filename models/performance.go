package models

// PeriodPerformance is one row of the yearly aggregation: average module
// scores and the number of test takers for a single period.
type PeriodPerformance struct {
	Periodo            string  `json:"periodo"`
	AvgQuantReasoning  float64 `json:"avg_quant_reasoning"`
	AvgCriticalReading float64 `json:"avg_critical_reading"`
	AvgEnglish         float64 `json:"avg_english"`
	AvgCitizenship     float64 `json:"avg_citizenship"`
	Students           int     `json:"students"`
}

// GenderPerformance is the same aggregation additionally split by gender.
type GenderPerformance struct {
	Periodo            string  `json:"periodo"`
	Genero             string  `json:"estu_genero"`
	AvgQuantReasoning  float64 `json:"avg_quant_reasoning"`
	AvgCriticalReading float64 `json:"avg_critical_reading"`
	AvgEnglish         float64 `json:"avg_english"`
	AvgCitizenship     float64 `json:"avg_citizenship"`
	Students           int     `json:"students"`
}

// DepartmentAverage is the average of one score column for one institution
// department.
type DepartmentAverage struct {
	Departamento string  `json:"departamento"`
	AvgScore     float64 `json:"avg_score"`
	Students     int     `json:"students"`
}

// StratumAverage is the average of one score column for one socioeconomic
// stratum and gender.
type StratumAverage struct {
	Estrato  string  `json:"estrato"`
	Genero   string  `json:"estu_genero"`
	AvgScore float64 `json:"avg_score"`
	Students int     `json:"students"`
}
