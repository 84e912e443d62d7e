// Package wire implements the Catan server's message codec: a closed,
// versioned catalog of message kinds encoded as big-endian binary fields
// with length-prefixed UTF-8 strings, bijective under
// decode(encode(m)) == m.
package wire

import "fmt"

// MsgType is the small-integer type tag carried by every message.
type MsgType int

const (
	// Lobby / handshake
	VERSION MsgType = iota + 1
	STATUSMESSAGE
	REJECTCONNECTION
	SERVERPING
	GAMES
	GAMESWITHOPTIONS
	NEWGAME
	NEWGAMEWITHOPTIONS
	DELETEGAME
	JOINGAME
	JOINGAMEAUTH
	LEAVEGAME
	GAMEMEMBERS
	GAMEOPTIONGETDEFAULTS
	GAMEOPTIONINFO
	SCENARIOINFO
	AUTHREQUEST

	// Game setup
	STARTGAME
	SITDOWN
	CHANGEFACE
	SETSEATLOCK
	BOARDLAYOUT
	BOARDLAYOUT2
	POTENTIALSETTLEMENTS
	PLAYERELEMENT
	PLAYERELEMENTS
	GAMEELEMENTS
	RESOURCECOUNT

	// Turn flow
	TURN
	SETTURN
	FIRSTPLAYER
	GAMESTATE
	ROLLDICEPROMPT
	ROLLDICE
	DICERESULT
	DICERESULTRESOURCES
	ENDTURN

	// Building
	BUILDREQUEST
	CANCELBUILDREQUEST
	PUTPIECE
	MOVEPIECE
	UNDOPUTPIECE
	REMOVEPIECE
	DEBUGFREEPLACE

	// Robber / robbery
	MOVEROBBER
	CHOOSEPLAYERREQUEST
	CHOOSEPLAYER
	REPORTROBBERY
	DISCARDREQUEST
	DISCARD

	// Trade
	MAKEOFFER
	ACCEPTOFFER
	REJECTOFFER
	CLEAROFFER
	CLEARTRADEMSG
	BANKTRADE

	// Development cards
	BUYDEVCARDREQUEST
	PLAYDEVCARDREQUEST
	DEVCARDACTION
	DEVCARDCOUNT
	SETPLAYEDDEVCARD
	PICKRESOURCES
	PICKRESOURCETYPE

	// Scenario extras
	REVEALFOGHEX
	PIECEVALUE
	INVENTORYITEMACTION
	SETSPECIALITEM
	SIMPLEREQUEST
	SIMPLEACTION
	SETSHIPROUTECLOSED
	SETLASTACTION

	// Text / observability
	GAMESERVERTEXT
	GAMETEXTMSG
	BCASTTEXTMSG
	GAMESTATS
	PLAYERSTATS
	DECLINEPLAYERREQUEST
	RESETBOARDREQUEST
	RESETBOARDVOTE
	RESETBOARDAUTH
)

var names = map[MsgType]string{
	VERSION:               "VERSION",
	STATUSMESSAGE:         "STATUSMESSAGE",
	REJECTCONNECTION:      "REJECTCONNECTION",
	SERVERPING:            "SERVERPING",
	GAMES:                 "GAMES",
	GAMESWITHOPTIONS:      "GAMESWITHOPTIONS",
	NEWGAME:               "NEWGAME",
	NEWGAMEWITHOPTIONS:    "NEWGAMEWITHOPTIONS",
	DELETEGAME:            "DELETEGAME",
	JOINGAME:              "JOINGAME",
	JOINGAMEAUTH:          "JOINGAMEAUTH",
	LEAVEGAME:             "LEAVEGAME",
	GAMEMEMBERS:           "GAMEMEMBERS",
	GAMEOPTIONGETDEFAULTS: "GAMEOPTIONGETDEFAULTS",
	GAMEOPTIONINFO:        "GAMEOPTIONINFO",
	SCENARIOINFO:          "SCENARIOINFO",
	AUTHREQUEST:           "AUTHREQUEST",

	STARTGAME:            "STARTGAME",
	SITDOWN:               "SITDOWN",
	CHANGEFACE:            "CHANGEFACE",
	SETSEATLOCK:           "SETSEATLOCK",
	BOARDLAYOUT:           "BOARDLAYOUT",
	BOARDLAYOUT2:          "BOARDLAYOUT2",
	POTENTIALSETTLEMENTS:  "POTENTIALSETTLEMENTS",
	PLAYERELEMENT:         "PLAYERELEMENT",
	PLAYERELEMENTS:        "PLAYERELEMENTS",
	GAMEELEMENTS:          "GAMEELEMENTS",
	RESOURCECOUNT:         "RESOURCECOUNT",

	TURN:                "TURN",
	SETTURN:             "SETTURN",
	FIRSTPLAYER:         "FIRSTPLAYER",
	GAMESTATE:           "GAMESTATE",
	ROLLDICEPROMPT:      "ROLLDICEPROMPT",
	ROLLDICE:            "ROLLDICE",
	DICERESULT:          "DICERESULT",
	DICERESULTRESOURCES: "DICERESULTRESOURCES",
	ENDTURN:             "ENDTURN",

	BUILDREQUEST:        "BUILDREQUEST",
	CANCELBUILDREQUEST:  "CANCELBUILDREQUEST",
	PUTPIECE:            "PUTPIECE",
	MOVEPIECE:           "MOVEPIECE",
	UNDOPUTPIECE:        "UNDOPUTPIECE",
	REMOVEPIECE:         "REMOVEPIECE",
	DEBUGFREEPLACE:      "DEBUGFREEPLACE",

	MOVEROBBER:           "MOVEROBBER",
	CHOOSEPLAYERREQUEST:  "CHOOSEPLAYERREQUEST",
	CHOOSEPLAYER:         "CHOOSEPLAYER",
	REPORTROBBERY:        "REPORTROBBERY",
	DISCARDREQUEST:       "DISCARDREQUEST",
	DISCARD:              "DISCARD",

	MAKEOFFER:     "MAKEOFFER",
	ACCEPTOFFER:   "ACCEPTOFFER",
	REJECTOFFER:   "REJECTOFFER",
	CLEAROFFER:    "CLEAROFFER",
	CLEARTRADEMSG: "CLEARTRADEMSG",
	BANKTRADE:     "BANKTRADE",

	BUYDEVCARDREQUEST:  "BUYDEVCARDREQUEST",
	PLAYDEVCARDREQUEST: "PLAYDEVCARDREQUEST",
	DEVCARDACTION:      "DEVCARDACTION",
	DEVCARDCOUNT:       "DEVCARDCOUNT",
	SETPLAYEDDEVCARD:   "SETPLAYEDDEVCARD",
	PICKRESOURCES:      "PICKRESOURCES",
	PICKRESOURCETYPE:   "PICKRESOURCETYPE",

	REVEALFOGHEX:         "REVEALFOGHEX",
	PIECEVALUE:           "PIECEVALUE",
	INVENTORYITEMACTION:  "INVENTORYITEMACTION",
	SETSPECIALITEM:       "SETSPECIALITEM",
	SIMPLEREQUEST:        "SIMPLEREQUEST",
	SIMPLEACTION:         "SIMPLEACTION",
	SETSHIPROUTECLOSED:   "SETSHIPROUTECLOSED",
	SETLASTACTION:        "SETLASTACTION",

	GAMESERVERTEXT:       "GAMESERVERTEXT",
	GAMETEXTMSG:          "GAMETEXTMSG",
	BCASTTEXTMSG:         "BCASTTEXTMSG",
	GAMESTATS:            "GAMESTATS",
	PLAYERSTATS:          "PLAYERSTATS",
	DECLINEPLAYERREQUEST: "DECLINEPLAYERREQUEST",
	RESETBOARDREQUEST:    "RESETBOARDREQUEST",
	RESETBOARDVOTE:       "RESETBOARDVOTE",
	RESETBOARDAUTH:       "RESETBOARDAUTH",
}

func (t MsgType) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("MsgType(%d)", int(t))
}

// Resource indexes a ResourceSet. UNKNOWN is used when hidden-info
// redaction hides the true type from a recipient.
type Resource int

const (
	CLAY Resource = iota
	ORE
	SHEEP
	WHEAT
	WOOD
	UNKNOWN
	NumResourceTypes
)

// PieceType tags a placed or pending game piece.
type PieceType int

const (
	ROAD PieceType = iota
	SETTLEMENT
	CITY
	SHIP
	FORTRESS
	VILLAGE
)

// DevCardType enumerates development card kinds (post-renumber, current
// client generation). PreRenumberType below maps these for old peers.
type DevCardType int

const (
	DevCardUnknown DevCardType = iota
	DevCardKnight
	DevCardRoadBuilding
	DevCardDiscovery // Year of Plenty
	DevCardMonopoly
	DevCardCapitol    // VP: Governors House
	DevCardUniversity // VP
	DevCardTemple     // VP
	DevCardTower      // VP (Great Hall in some rulesets)
	DevCardMarket     // VP
)

// PreRenumberType returns the pre-VERSION_FOR_RENUMBERED_TYPES numbering
// for a dev card type, for peers negotiated below that version.
func (d DevCardType) PreRenumberType() int {
	switch d {
	case DevCardKnight:
		return 9
	case DevCardRoadBuilding:
		return 1
	case DevCardDiscovery:
		return 2
	case DevCardMonopoly:
		return 3
	case DevCardCapitol, DevCardUniversity, DevCardTemple, DevCardTower, DevCardMarket:
		return 4 + int(d-DevCardCapitol) // 4..8, matches legacy VP numbering block
	default:
		return 0
	}
}

// DevCardAge partitions a player's dev-card inventory.
type DevCardAge int

const (
	CardNew DevCardAge = iota
	CardOld
	CardKept
)
