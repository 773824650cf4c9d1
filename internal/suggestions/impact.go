package suggestions

const (
	ImpactClassHigh    = "bg-green-600 text-white"
	ImpactClassMedium  = "bg-yellow-600 text-white"
	ImpactClassLow     = "bg-gray-500 text-white"
	ImpactClassDefault = "bg-gray-400 text-white"
)

// GetImpactColor maps an impact level to its badge class.
func GetImpactColor(impact Impact) string {
	switch impact {
	case ImpactHigh:
		return ImpactClassHigh
	case ImpactMedium:
		return ImpactClassMedium
	case ImpactLow:
		return ImpactClassLow
	default:
		return ImpactClassDefault
	}
}
