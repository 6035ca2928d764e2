package movio

const HDLR = Tag(0x68646c72)

var (
	handlerVideo = StringToTag("vide")
	handlerSound = StringToTag("soun")
)

type HandlerRefer struct {
	Version          uint8
	Flags            uint32
	ComponentType    Tag // "mhlr" or "dhlr" in QuickTime files, zero in ISO files
	ComponentSubtype Tag // handler type, e.g. "vide" or "soun"
	AtomPos
}

func (hdlr HandlerRefer) Tag() Tag {
	return HDLR
}

func (hdlr HandlerRefer) Children() (r []Atom) {
	return
}

func (hdlr HandlerRefer) IsVideo() bool {
	return hdlr.ComponentSubtype == handlerVideo
}

func (hdlr HandlerRefer) IsSound() bool {
	return hdlr.ComponentSubtype == handlerSound
}

func parseHandlerRefer(v *View, pos AtomPos) (_ Atom, err error) {
	hdlr := &HandlerRefer{AtomPos: pos}
	if hdlr.Version, err = v.ReadU8(); err != nil {
		return
	}
	if hdlr.Flags, err = v.ReadFlags(); err != nil {
		return
	}
	var raw uint32
	if raw, err = v.ReadU32(); err != nil {
		return
	}
	hdlr.ComponentType = Tag(raw)
	if raw, err = v.ReadU32(); err != nil {
		return
	}
	hdlr.ComponentSubtype = Tag(raw)
	return hdlr, nil
}
