package wire

// Version numbers follow the same "MMmmbb" convention the teacher's
// client negotiates (e.g. 2000 == 2.0.00); only the handful of gates this
// server actually cares about are named below.
const (
	VersionBase                = 1000
	VersionPlayerElementsBatch = 1113
	VersionDiceResultResources = 2000
	VersionRenumberedDevCards  = 2000
)

// minVersions holds the few kinds with a gate above VersionBase. Any
// kind absent here is assumed supported by every version this server
// will negotiate down to.
var minVersions = map[MsgType]int{
	PLAYERELEMENTS:      VersionPlayerElementsBatch,
	DICERESULTRESOURCES: VersionDiceResultResources,
}

// MinVersion returns the negotiated version a recipient must have to be
// sent t directly, without falling back to an older encoding.
func MinVersion(t MsgType) int {
	if v, ok := minVersions[t]; ok {
		return v
	}
	return VersionBase
}

// EncodeForVersion renders m as one or more messages suitable for a
// recipient negotiated at clientVersion: the direct encoding when the
// recipient understands m's kind outright, or an equivalent composed of
// older kinds otherwise (§4.A's version-gating rule). Each recipient's
// session.Session.SendMessage calls this with that session's version.
func EncodeForVersion(m Message, clientVersion int) []Message {
	if dc, ok := m.(*DevCardAction); ok && clientVersion < VersionRenumberedDevCards {
		legacy := *dc
		legacy.CardType = DevCardType(dc.CardType).PreRenumberType()
		return []Message{&legacy}
	}
	if clientVersion >= MinVersion(m.Type()) {
		return []Message{m}
	}
	switch v := m.(type) {
	case *PlayerElements:
		return fallbackPlayerElements(v)
	case *DiceResultResources:
		return fallbackDiceResultResources(v)
	default:
		// No known fallback: send as-is rather than silently dropping it.
		return []Message{m}
	}
}

// fallbackPlayerElements expands a batched update into one PLAYERELEMENT
// per element, for clients older than VersionPlayerElementsBatch.
func fallbackPlayerElements(v *PlayerElements) []Message {
	out := make([]Message, 0, len(v.ElementTypes))
	for i, et := range v.ElementTypes {
		out = append(out, &PlayerElement{
			GameName:    v.GameName,
			Seat:        v.Seat,
			Action:      v.Action,
			ElementType: et,
			Amount:      v.Amounts[i],
		})
	}
	return out
}

// fallbackDiceResultResources expands the bundled gain report into a
// server text line plus one PLAYERELEMENT(GAIN) per seat per resource,
// for clients older than VersionDiceResultResources.
func fallbackDiceResultResources(v *DiceResultResources) []Message {
	out := []Message{&GameServerText{
		GameName: v.GameName,
		Text:     "Resources were distributed to players.",
	}}
	for i, seat := range v.Seats {
		gained := v.Gained[i]
		for rt := 0; rt < int(UNKNOWN); rt++ {
			if gained[rt] == 0 {
				continue
			}
			out = append(out, &PlayerElement{
				GameName:    v.GameName,
				Seat:        seat,
				Action:      1, // GAIN
				ElementType: rt,
				Amount:      gained[rt],
			})
		}
	}
	return out
}
