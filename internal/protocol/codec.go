package protocol

import "github.com/tinylib/msgp/msgp"

// These Encode/DecodeMsg methods are hand-written rather than produced by
// `go generate`: each message is encoded as a msgpack array in field order
// (msgp's tuple-encoding form), which keeps the hand-maintained pairing
// between encoder and decoder a single array-length and read/write each.

func writeStrings(en *msgp.Writer, ss []string) error {
	if err := en.WriteArrayHeader(uint32(len(ss))); err != nil {
		return err
	}
	for _, s := range ss {
		if err := en.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}

func readStrings(dc *msgp.Reader) ([]string, error) {
	n, err := dc.ReadArrayHeader()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		s, err := dc.ReadString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func writeInts(en *msgp.Writer, is []int) error {
	if err := en.WriteArrayHeader(uint32(len(is))); err != nil {
		return err
	}
	for _, i := range is {
		if err := en.WriteInt(i); err != nil {
			return err
		}
	}
	return nil
}

func readInts(dc *msgp.Reader) ([]int, error) {
	n, err := dc.ReadArrayHeader()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]int, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := dc.ReadInt()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func writeBools(en *msgp.Writer, bs []bool) error {
	if err := en.WriteArrayHeader(uint32(len(bs))); err != nil {
		return err
	}
	for _, b := range bs {
		if err := en.WriteBool(b); err != nil {
			return err
		}
	}
	return nil
}

func readBools(dc *msgp.Reader) ([]bool, error) {
	n, err := dc.ReadArrayHeader()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]bool, 0, n)
	for i := uint32(0); i < n; i++ {
		b, err := dc.ReadBool()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (z *Connect) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(4); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = en.WriteString(z.Name); err != nil {
		return
	}
	if err = en.WriteString(z.RoomID); err != nil {
		return
	}
	return en.WriteString(z.Token)
}

func (z *Connect) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.Name, err = dc.ReadString(); err != nil {
		return
	}
	if z.RoomID, err = dc.ReadString(); err != nil {
		return
	}
	z.Token, err = dc.ReadString()
	return
}

func (z *Start) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(1); err != nil {
		return
	}
	return en.WriteString(z.Type)
}

func (z *Start) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	z.Type, err = dc.ReadString()
	return
}

func (z *SwitchSeat) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(2); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	return en.WriteInt(z.Target)
}

func (z *SwitchSeat) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	z.Target, err = dc.ReadInt()
	return
}

func (z *SetMode) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(2); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	return en.WriteString(z.Mode)
}

func (z *SetMode) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	z.Mode, err = dc.ReadString()
	return
}

func (z *Chat) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(2); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	return en.WriteString(z.Text)
}

func (z *Chat) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	z.Text, err = dc.ReadString()
	return
}

func (z *ForceEnd) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(1); err != nil {
		return
	}
	return en.WriteString(z.Type)
}

func (z *ForceEnd) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	z.Type, err = dc.ReadString()
	return
}

func (z *Reconnect) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(2); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	return en.WriteString(z.Token)
}

func (z *Reconnect) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	z.Token, err = dc.ReadString()
	return
}

func (z *Ready) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(1); err != nil {
		return
	}
	return en.WriteString(z.Type)
}

func (z *Ready) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	z.Type, err = dc.ReadString()
	return
}

func (z *PlayCards) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(2); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	return writeStrings(en, z.CardIDs)
}

func (z *PlayCards) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	z.CardIDs, err = readStrings(dc)
	return
}

func (z *PassTurn) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(1); err != nil {
		return
	}
	return en.WriteString(z.Type)
}

func (z *PassTurn) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	z.Type, err = dc.ReadString()
	return
}

func (z *PayTribute) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(2); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	return en.WriteString(z.CardID)
}

func (z *PayTribute) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	z.CardID, err = dc.ReadString()
	return
}

func (z *ReturnTribute) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(3); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = en.WriteInt(z.ToSeat); err != nil {
		return
	}
	return en.WriteString(z.CardID)
}

func (z *ReturnTribute) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.ToSeat, err = dc.ReadInt(); err != nil {
		return
	}
	z.CardID, err = dc.ReadString()
	return
}

func (z *Welcome) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(4); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = en.WriteString(z.RoomID); err != nil {
		return
	}
	if err = en.WriteInt(z.Seat); err != nil {
		return
	}
	return en.WriteString(z.Token)
}

func (z *Welcome) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.RoomID, err = dc.ReadString(); err != nil {
		return
	}
	if z.Seat, err = dc.ReadInt(); err != nil {
		return
	}
	z.Token, err = dc.ReadString()
	return
}

func (z *SeatUpdate) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(2); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	return writeStrings(en, z.Seats)
}

func (z *SeatUpdate) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	z.Seats, err = readStrings(dc)
	return
}

func (z *DealStarted) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(4); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = en.WriteString(z.Level); err != nil {
		return
	}
	if err = writeStrings(en, z.Hand); err != nil {
		return
	}
	return en.WriteInt(z.YourSeat)
}

func (z *DealStarted) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.Level, err = dc.ReadString(); err != nil {
		return
	}
	if z.Hand, err = readStrings(dc); err != nil {
		return
	}
	z.YourSeat, err = dc.ReadInt()
	return
}

func (z *TurnRequest) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(3); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = en.WriteInt(z.DeadlineMs); err != nil {
		return
	}
	return en.WriteBool(z.MustBeatCards)
}

func (z *TurnRequest) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.DeadlineMs, err = dc.ReadInt(); err != nil {
		return
	}
	z.MustBeatCards, err = dc.ReadBool()
	return
}

func (z *Event) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(6); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = en.WriteString(z.Kind); err != nil {
		return
	}
	if err = en.WriteInt(z.Seat); err != nil {
		return
	}
	if err = writeStrings(en, z.Cards); err != nil {
		return
	}
	if err = writeInts(en, z.Finish); err != nil {
		return
	}
	return en.WriteString(z.Level)
}

func (z *Event) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.Kind, err = dc.ReadString(); err != nil {
		return
	}
	if z.Seat, err = dc.ReadInt(); err != nil {
		return
	}
	if z.Cards, err = readStrings(dc); err != nil {
		return
	}
	if z.Finish, err = readInts(dc); err != nil {
		return
	}
	z.Level, err = dc.ReadString()
	return
}

func (z *ErrorMsg) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(3); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = en.WriteString(z.Code); err != nil {
		return
	}
	return en.WriteString(z.Message)
}

func (z *ErrorMsg) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.Code, err = dc.ReadString(); err != nil {
		return
	}
	z.Message, err = dc.ReadString()
	return
}

func (z *RoomState) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(5); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = writeStrings(en, z.Seats); err != nil {
		return
	}
	if err = writeBools(en, z.Ready); err != nil {
		return
	}
	if err = en.WriteInt(z.HostSeat); err != nil {
		return
	}
	return en.WriteString(z.Mode)
}

func (z *RoomState) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.Seats, err = readStrings(dc); err != nil {
		return
	}
	if z.Ready, err = readBools(dc); err != nil {
		return
	}
	if z.HostSeat, err = dc.ReadInt(); err != nil {
		return
	}
	z.Mode, err = dc.ReadString()
	return
}

func (z *GameState) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(14); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = en.WriteString(z.Phase); err != nil {
		return
	}
	if err = en.WriteString(z.Level); err != nil {
		return
	}
	if err = en.WriteInt(z.CurrentTurn); err != nil {
		return
	}
	if err = en.WriteInt(z.YourSeat); err != nil {
		return
	}
	if err = writeStrings(en, z.YourHand); err != nil {
		return
	}
	if err = writeInts(en, z.HandCounts); err != nil {
		return
	}
	if err = writeStrings(en, z.LastHand); err != nil {
		return
	}
	if err = en.WriteInt(z.LastHandBy); err != nil {
		return
	}
	if err = writeStrings(en, z.RoundActions); err != nil {
		return
	}
	if err = writeInts(en, z.Winners); err != nil {
		return
	}
	if err = en.WriteBool(z.TributeOwed); err != nil {
		return
	}
	if err = writeStrings(en, z.TeamLevels); err != nil {
		return
	}
	return en.WriteInt(z.ActiveTeam)
}

func (z *GameState) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.Phase, err = dc.ReadString(); err != nil {
		return
	}
	if z.Level, err = dc.ReadString(); err != nil {
		return
	}
	if z.CurrentTurn, err = dc.ReadInt(); err != nil {
		return
	}
	if z.YourSeat, err = dc.ReadInt(); err != nil {
		return
	}
	if z.YourHand, err = readStrings(dc); err != nil {
		return
	}
	if z.HandCounts, err = readInts(dc); err != nil {
		return
	}
	if z.LastHand, err = readStrings(dc); err != nil {
		return
	}
	if z.LastHandBy, err = dc.ReadInt(); err != nil {
		return
	}
	if z.RoundActions, err = readStrings(dc); err != nil {
		return
	}
	if z.Winners, err = readInts(dc); err != nil {
		return
	}
	if z.TributeOwed, err = dc.ReadBool(); err != nil {
		return
	}
	if z.TeamLevels, err = readStrings(dc); err != nil {
		return
	}
	z.ActiveTeam, err = dc.ReadInt()
	return
}

func (z *GameOver) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(2); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	return writeInts(en, z.Winners)
}

func (z *GameOver) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	z.Winners, err = readInts(dc)
	return
}

func (z *MatchOver) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(3); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = en.WriteInt(z.Team); err != nil {
		return
	}
	return writeStrings(en, z.TeamLevels)
}

func (z *MatchOver) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.Team, err = dc.ReadInt(); err != nil {
		return
	}
	z.TeamLevels, err = readStrings(dc)
	return
}

func (z *ChatMessage) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(5); err != nil {
		return
	}
	if err = en.WriteString(z.Type); err != nil {
		return
	}
	if err = en.WriteString(z.Sender); err != nil {
		return
	}
	if err = en.WriteString(z.Text); err != nil {
		return
	}
	if err = en.WriteInt(z.Seat); err != nil {
		return
	}
	return en.WriteInt64(z.Time)
}

func (z *ChatMessage) DecodeMsg(dc *msgp.Reader) (err error) {
	if _, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if z.Type, err = dc.ReadString(); err != nil {
		return
	}
	if z.Sender, err = dc.ReadString(); err != nil {
		return
	}
	if z.Text, err = dc.ReadString(); err != nil {
		return
	}
	if z.Seat, err = dc.ReadInt(); err != nil {
		return
	}
	z.Time, err = dc.ReadInt64()
	return
}
