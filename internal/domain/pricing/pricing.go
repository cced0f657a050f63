package pricing

// Allocation is the split of a service's gross price between the collaborator,
// the servicing partner and the platform margin. It is derived on every input
// change and never persisted as-is; only the three output amounts are written
// to the service record at save time.
type Allocation struct {
	GrossPrice          float64
	CollaboratorPercent float64
	TransferPercent     float64

	CollaboratorPrice float64
	PartnerPrice      float64
	Profit            float64
}

// Compute derives the price split from a gross price and two percentages.
//
//	CollaboratorPrice = gross × (1 − collaboratorPercent/100)
//	PartnerPrice      = CollaboratorPrice × (1 − transferPercent/100)
//	Profit            = CollaboratorPrice × (transferPercent/100)
//
// Percentages are expected in [0,100] but are not clamped here; rejecting
// out-of-range values is the caller's (form validation's) job. Pure and cheap,
// safe to call on every keystroke-level update. No rounding is applied;
// currency formatting is a presentation concern.
func Compute(grossPrice, collaboratorPercent, transferPercent float64) Allocation {
	collaboratorPrice := grossPrice - grossPrice*(collaboratorPercent/100)
	partnerPrice := collaboratorPrice * (1 - transferPercent/100)
	profit := collaboratorPrice * (transferPercent / 100)

	return Allocation{
		GrossPrice:          grossPrice,
		CollaboratorPercent: collaboratorPercent,
		TransferPercent:     transferPercent,
		CollaboratorPrice:   collaboratorPrice,
		PartnerPrice:        partnerPrice,
		Profit:              profit,
	}
}
