package wire

import (
	"bytes"
	"reflect"
	"testing"
)

// roundTrip checks decode(encode(m)) == m for every sample message kind,
// the bijectivity property §4.A/§8 require of the codec.
func TestRoundTrip(t *testing.T) {
	samples := []Message{
		&Version{VersNum: 2000, VersStr: "2.0.00", BuildStr: "b1", FeatureSet: "", Locale: "en_US"},
		&StatusMessage{Code: 0, Text: "Welcome"},
		&RejectConnection{Text: "nickname in use"},
		&ServerPing{SleepMillis: 45 * 60 * 1000},
		&Games{Names: []string{"game1", "game2"}},
		&GamesWithOptions{Games: []GameInfo{{Name: "g1", Opts: "PL=4,VP=t10"}}},
		&NewGame{GameName: "g1"},
		&NewGameWithOptions{GameName: "g1", Opts: "PL=4"},
		&DeleteGame{GameName: "g1"},
		&JoinGame{Nickname: "alice", Password: "", Host: "", GameName: "g1"},
		&JoinGameAuth{GameName: "g1"},
		&LeaveGame{GameName: "g1", Nickname: "alice"},
		&GameMembers{GameName: "g1", Members: []string{"alice", "bob"}},
		&GameOptionGetDefaults{Opts: []string{}},
		&GameOptionInfo{Key: "PL", OptType: 2, MinValue: 2, MaxValue: 6, DefaultInt: 4},
		&ScenarioInfo{Key: "SC_FOG", Name: "Fog Islands"},
		&AuthRequest{Role: 0, Nickname: "alice", Scheme: 1, Password: "secret"},

		&StartGame{GameName: "g1"},
		&SitDown{GameName: "g1", Seat: 2, Nickname: "alice", IsRobot: false},
		&ChangeFace{GameName: "g1", Seat: 2, FaceID: 7},
		&SetSeatLock{GameName: "g1", Seat: 1, Locked: true},
		&BoardLayout{GameName: "g1", HexLayout: []int{1, 2, 3}, NumberLayout: []int{6, 8, 5}, RobberHex: 1},
		&BoardLayout2{GameName: "g1", HexLayout: []int{1, 2}, NumberLayout: []int{6, 8}, PortLayout: []int{0, 1}, RobberHex: 1, PirateHex: 9},
		&PotentialSettlements{GameName: "g1", Seat: 2, Nodes: []int{5, 6, 7}},
		&PlayerElement{GameName: "g1", Seat: 1, Action: 1, ElementType: int(CLAY), Amount: 2},
		&PlayerElements{GameName: "g1", Seat: 1, Action: 1, ElementTypes: []int{int(CLAY), int(ORE)}, Amounts: []int{1, 2}},
		&GameElements{GameName: "g1", ElementTypes: []int{0}, Amounts: []int{25}},
		&ResourceCount{GameName: "g1", Seat: 1, Count: 4},

		&Turn{GameName: "g1", Seat: 2, State: 15},
		&SetTurn{GameName: "g1", Seat: 2},
		&FirstPlayer{GameName: "g1", Seat: 0},
		&GameState{GameName: "g1", State: 20},
		&RollDicePrompt{GameName: "g1", Seat: 2},
		&RollDice{GameName: "g1"},
		&DiceResult{GameName: "g1", DiceA: 3, DiceB: 4},
		&DiceResultResources{
			GameName: "g1",
			Seats:    []int{0, 1},
			Gained:   []ResourceSet{{1: 1}, {0: 2}},
			Totals:   []ResourceSet{{1: 5}, {0: 6}},
		},
		&EndTurn{GameName: "g1"},

		&BuildRequest{GameName: "g1", PieceType: int(ROAD)},
		&CancelBuildRequest{GameName: "g1", PieceType: int(SETTLEMENT)},
		&PutPiece{GameName: "g1", PieceType: int(ROAD), Seat: 1, Coord: 5},
		&MovePiece{GameName: "g1", PieceType: int(SHIP), Seat: 1, FromCoord: 5, ToCoord: 6},
		&UndoPutPiece{GameName: "g1", PieceType: int(ROAD), Seat: 1, Coord: 5},
		&RemovePiece{GameName: "g1", PieceType: int(VILLAGE), Seat: 1, Coord: 5},
		&DebugFreePlace{GameName: "g1", On: true},

		&MoveRobber{GameName: "g1", Seat: 1, Hex: 12},
		&ChoosePlayerRequest{GameName: "g1", Choices: []int{1, 2}},
		&ChoosePlayer{GameName: "g1", Seat: 1},
		&ReportRobbery{GameName: "g1", Perpetrator: 1, Victim: 2, ResourceType: int(ORE), IsGain: true},
		&DiscardRequest{GameName: "g1", Count: 4},
		&Discard{GameName: "g1", Seat: 1, Resources: ResourceSet{0: 2, 2: 2}},

		&MakeOffer{GameName: "g1", Offer: TradeOffer{FromSeat: 1, ToMask: []bool{false, true, true, false}, Give: ResourceSet{0: 1}, Get: ResourceSet{1: 1}}},
		&AcceptOffer{GameName: "g1", Accepter: 2, Offerer: 1, ToGive: ResourceSet{1: 1}, ToGet: ResourceSet{0: 1}},
		&RejectOffer{GameName: "g1", Seat: 2},
		&ClearOffer{GameName: "g1", Seat: 1},
		&ClearTradeMsg{GameName: "g1", Seat: 1},
		&BankTrade{GameName: "g1", Seat: 1, Give: ResourceSet{4: 4}, Get: ResourceSet{0: 1}},

		&BuyDevCardRequest{GameName: "g1"},
		&PlayDevCardRequest{GameName: "g1", CardType: int(DevCardKnight)},
		&DevCardAction{GameName: "g1", Seat: 1, Action: 1, CardType: int(DevCardKnight)},
		&DevCardCount{GameName: "g1", Count: 20},
		&SetPlayedDevCard{GameName: "g1", Seat: 1, Played: true},
		&PickResources{GameName: "g1", Seat: 1, Resources: ResourceSet{0: 1, 1: 1}},
		&PickResourceType{GameName: "g1", Seat: 1, Resource: int(SHEEP)},

		&RevealFogHex{GameName: "g1", Hex: 12, HexType: 3, NumberToken: 9},
		&PieceValue{GameName: "g1", Coord: 5, Value: 2},
		&InventoryItemAction{GameName: "g1", Seat: 1, Action: 1, ItemType: 5},
		&SetSpecialItem{GameName: "g1", TypeKey: "SC_WOND_LEVEL", Seat: 1, ItemCoord: 5, ItemLevel: 2},
		&SimpleRequest{GameName: "g1", Seat: 1, ReqType: 1000, V1: 1, V2: 2},
		&SimpleAction{GameName: "g1", Seat: 1, ActType: 1000, V1: 1, V2: 2},
		&SetShipRouteClosed{GameName: "g1", Edge: 5, Closed: true},
		&SetLastAction{GameName: "g1", ActionType: 5, P1: 1, P2: 2, P3: 3, RS1: ResourceSet{0: 1}, RS2: ResourceSet{1: 1}},

		&GameServerText{GameName: "g1", Text: "Bob rolled a 7."},
		&GameTextMsg{GameName: "g1", Nickname: "alice", Text: "hi"},
		&BcastTextMsg{Text: "server restarting"},
		&GameStats{GameName: "g1", Scores: []int{3, 5, 2, 1}},
		&PlayerStats{GameName: "g1", Seat: 1, ResourceRolls: []int{0, 0, 1}, TradeCounts: []int{2, 0}},
		&DeclinePlayerRequest{GameName: "g1", ReasonCode: 1, Text: "not your turn"},
		&ResetBoardRequest{GameName: "g1"},
		&ResetBoardVote{GameName: "g1", Seat: 1, Yes: true},
		&ResetBoardAuth{GameName: "g1", Accepted: true},
	}

	seen := map[MsgType]bool{}
	for _, m := range samples {
		seen[m.Type()] = true
		payload := Encode(m)
		got, err := Decode(payload)
		if err != nil {
			t.Fatalf("%s: decode error: %v", m.Type(), err)
		}
		if !reflect.DeepEqual(got, m) {
			t.Fatalf("%s: round trip mismatch\n got: %#v\nwant: %#v", m.Type(), got, m)
		}
	}
	for t2 := range names {
		if !seen[t2] {
			panic("no round-trip sample for " + t2.String())
		}
	}
}

func TestDecodeUnknownType(t *testing.T) {
	w := &Writer{}
	w.WriteInt(99999)
	_, err := Decode(w.Bytes())
	if err == nil {
		t.Fatal("expected error decoding unknown type")
	}
}

func TestDecodeTruncated(t *testing.T) {
	full := Encode(&GameTextMsg{GameName: "g1", Nickname: "alice", Text: "hello world"})
	_, err := Decode(full[:len(full)-2])
	if err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestFrameRoundTrip(t *testing.T) {
	payload := Encode(&DiceResult{GameName: "g1", DiceA: 3, DiceB: 4})
	var buf bytes.Buffer
	if err := WriteFrame(&buf, payload); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFrame(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("frame payload mismatch")
	}
}

func TestResourceSetSubDrainsUnknown(t *testing.T) {
	rs := ResourceSet{int(CLAY): 1, int(UNKNOWN): 3}
	out := rs.Sub(ResourceSet{int(CLAY): 2})
	if out[int(CLAY)] != 0 {
		t.Fatalf("clay should floor at 0, got %d", out[int(CLAY)])
	}
	if out[int(UNKNOWN)] != 2 {
		t.Fatalf("deficit of 1 should drain from unknown: got %d", out[int(UNKNOWN)])
	}
}

func TestPlayerElementsFallback(t *testing.T) {
	pe := &PlayerElements{
		GameName:     "g1",
		Seat:         1,
		Action:       1,
		ElementTypes: []int{int(CLAY), int(ORE)},
		Amounts:      []int{2, 1},
	}
	msgs := EncodeForVersion(pe, VersionBase)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 fallback messages, got %d", len(msgs))
	}
	for _, m := range msgs {
		if _, ok := m.(*PlayerElement); !ok {
			t.Fatalf("expected *PlayerElement, got %T", m)
		}
	}
	direct := EncodeForVersion(pe, VersionPlayerElementsBatch)
	if len(direct) != 1 || direct[0] != Message(pe) {
		t.Fatalf("expected direct passthrough at batch version")
	}
}

func TestDevCardActionPreRenumberFallback(t *testing.T) {
	dc := &DevCardAction{GameName: "g1", Seat: 1, Action: 1, CardType: int(DevCardKnight)}
	msgs := EncodeForVersion(dc, VersionBase)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	got := msgs[0].(*DevCardAction)
	if got.CardType != DevCardKnight.PreRenumberType() {
		t.Fatalf("expected pre-renumber card type %d, got %d", DevCardKnight.PreRenumberType(), got.CardType)
	}
}
