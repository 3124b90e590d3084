package models

// QualityReport holds the counts produced by the data-quality query. Every
// field except TotalRows counts rows that violate one expectation; a clean
// load reports zeros across the board. Nothing is enforced, only reported.
type QualityReport struct {
	TotalRows              int `json:"total_rows"`
	QuantReasoningOutRange int `json:"quant_reasoning_out_of_range"`
	CriticalReadingOutRang int `json:"critical_reading_out_of_range"`
	EnglishOutRange        int `json:"english_out_of_range"`
	CitizenshipOutRange    int `json:"citizenship_out_of_range"`
	WrittenCommOutRange    int `json:"written_comm_out_of_range"`
	InvalidGender          int `json:"invalid_gender"`
	InvalidInternetFlag    int `json:"invalid_internet_flag"`
	InvalidComputerFlag    int `json:"invalid_computer_flag"`
	InvalidPaymentFlags    int `json:"invalid_payment_flags"`
	InvalidStratum         int `json:"invalid_stratum"`
	MissingStudentID       int `json:"missing_student_id"`
	DuplicateStudentID     int `json:"duplicate_student_id"`
}

// Clean reports whether every violation count is zero.
func (q QualityReport) Clean() bool {
	return q.QuantReasoningOutRange == 0 &&
		q.CriticalReadingOutRang == 0 &&
		q.EnglishOutRange == 0 &&
		q.CitizenshipOutRange == 0 &&
		q.WrittenCommOutRange == 0 &&
		q.InvalidGender == 0 &&
		q.InvalidInternetFlag == 0 &&
		q.InvalidComputerFlag == 0 &&
		q.InvalidPaymentFlags == 0 &&
		q.InvalidStratum == 0 &&
		q.MissingStudentID == 0 &&
		q.DuplicateStudentID == 0
}
