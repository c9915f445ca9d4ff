package ast

type (
	NodeID uint32
	AttrID uint32
)

const (
	NoNodeID NodeID = 0
	NoAttrID AttrID = 0
)

func (id NodeID) IsValid() bool { return id != NoNodeID }
func (id AttrID) IsValid() bool { return id != NoAttrID }
