package store

// Kind identifies an object's position in the HOST/SERVICE/METRIC/ATTRIBUTE
// registry. Values are bit-flags so a connection-layer message can address a
// compound kind such as "service attribute" as KindService|KindAttribute.
type Kind uint8

const (
	KindHost      Kind = 1
	KindService   Kind = 2
	KindMetric    Kind = 4
	KindAttribute Kind = 8
)

func (k Kind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindService:
		return "service"
	case KindMetric:
		return "metric"
	case KindAttribute:
		return "attribute"
	default:
		return "unknown"
	}
}

// FieldID names a generic field readable from any store object via GetField.
type FieldID int

const (
	FieldName FieldID = iota
	FieldLastUpdate
	FieldAge
	FieldInterval
	FieldBackend

	// FieldValue exposes an Attribute's own datum value. It is not part of
	// the generic registry (spec.md §6 lists only the five fields above);
	// it's added so expressions/matchers can reference "the value of this
	// attribute" at all. GetField returns datum.Null for FieldValue on any
	// non-Attribute object.
	FieldValue
)

func (f FieldID) String() string {
	switch f {
	case FieldName:
		return "NAME"
	case FieldLastUpdate:
		return "LAST_UPDATE"
	case FieldAge:
		return "AGE"
	case FieldInterval:
		return "INTERVAL"
	case FieldBackend:
		return "BACKEND"
	case FieldValue:
		return "VALUE"
	default:
		return "UNKNOWN"
	}
}
