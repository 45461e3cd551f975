package model

// CodigoBarras is the reservation set of every issued barcode. Membership is
// checked before issuing a new code so no two records — of any kind — ever
// share one. Deleting an item removes its row, freeing the code for reuse.
type CodigoBarras struct {
	Codigo string `gorm:"primaryKey" json:"codigo"`
}

func (CodigoBarras) TableName() string { return "codigos_barras" }
