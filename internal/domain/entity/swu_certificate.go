package entity

// SWUCertificate is a batch of system-wide upgrade certificates
type SWUCertificate struct {
	EarnedDate   string `json:"earnedDate" bson:"earnedDate"`
	ValidThrough string `json:"validThrough" bson:"validThrough"`
	Earned       int    `json:"earned" bson:"earned"`
	Used         int    `json:"used" bson:"used"`
	Expired      int    `json:"expired" bson:"expired"`
	Available    int    `json:"available" bson:"available"`
}
