package entities

import (
	"bytes"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/reglet-dev/profilekit/internal/domain/values"
)

// SnapshotVersion is the only snapshot layout this package reads and writes.
const SnapshotVersion = 1

var snapshotMagic = []byte("PRFL")

// Field numbers of the snapshot layout, in encoding order.
const (
	snapshotFieldID protowire.Number = iota + 1
	snapshotFieldFirstName
	snapshotFieldMiddleName
	snapshotFieldLastName
	snapshotFieldName
	snapshotFieldLinkURI
)

// ToBinarySnapshot encodes the profile as magic, version, then one
// length-delimited record per present field in field-number order.
func (p *Profile) ToBinarySnapshot() []byte {
	b := make([]byte, 0, 64)
	b = append(b, snapshotMagic...)
	b = protowire.AppendVarint(b, SnapshotVersion)

	b = appendSnapshotField(b, snapshotFieldID, p.id.String())
	for _, f := range []struct {
		v   *string
		num protowire.Number
	}{
		{p.firstName, snapshotFieldFirstName},
		{p.middleName, snapshotFieldMiddleName},
		{p.lastName, snapshotFieldLastName},
		{p.name, snapshotFieldName},
	} {
		if f.v != nil {
			b = appendSnapshotField(b, f.num, *f.v)
		}
	}
	if p.linkURI != nil {
		b = appendSnapshotField(b, snapshotFieldLinkURI, p.linkURI.String())
	}
	return b
}

// FromBinarySnapshot decodes a snapshot produced by ToBinarySnapshot.
// Anything other than a well-formed snapshot is rejected with a CorruptSnapshotError.
func FromBinarySnapshot(data []byte) (*Profile, error) {
	if len(data) < len(snapshotMagic) || !bytes.Equal(data[:len(snapshotMagic)], snapshotMagic) {
		return nil, &CorruptSnapshotError{Message: "missing snapshot header"}
	}
	off := len(snapshotMagic)

	version, n := protowire.ConsumeVarint(data[off:])
	if n < 0 {
		return nil, &CorruptSnapshotError{Offset: off, Message: "bad version", Cause: protowire.ParseError(n)}
	}
	if version != SnapshotVersion {
		return nil, &CorruptSnapshotError{Offset: off, Message: fmt.Sprintf("unsupported version %d", version)}
	}
	off += n

	var (
		params ProfileParams
		hasID  bool
		last   protowire.Number
	)
	for off < len(data) {
		num, typ, n := protowire.ConsumeTag(data[off:])
		if n < 0 {
			return nil, &CorruptSnapshotError{Offset: off, Message: "bad field tag", Cause: protowire.ParseError(n)}
		}
		if num < snapshotFieldID || num > snapshotFieldLinkURI {
			return nil, &CorruptSnapshotError{Offset: off, Message: fmt.Sprintf("unknown field %d", num)}
		}
		if typ != protowire.BytesType {
			return nil, &CorruptSnapshotError{Offset: off, Message: fmt.Sprintf("field %d has wire type %d, want bytes", num, typ)}
		}
		if num <= last {
			return nil, &CorruptSnapshotError{Offset: off, Message: fmt.Sprintf("field %d is duplicated or out of order", num)}
		}
		fieldOff := off
		off += n

		v, n := protowire.ConsumeString(data[off:])
		if n < 0 {
			return nil, &CorruptSnapshotError{Offset: off, Message: fmt.Sprintf("truncated field %d", num), Cause: protowire.ParseError(n)}
		}
		off += n
		last = num

		switch num {
		case snapshotFieldID:
			params.ID = v
			hasID = true
		case snapshotFieldFirstName:
			params.FirstName = &v
		case snapshotFieldMiddleName:
			params.MiddleName = &v
		case snapshotFieldLastName:
			params.LastName = &v
		case snapshotFieldName:
			params.Name = &v
		case snapshotFieldLinkURI:
			link, err := values.ParseLinkURI(v)
			if err != nil {
				return nil, &CorruptSnapshotError{Offset: fieldOff, Message: "invalid link URI", Cause: err}
			}
			params.LinkURI = &link
		}
	}

	if !hasID {
		return nil, &CorruptSnapshotError{Offset: off, Message: "missing id field"}
	}
	p, err := NewProfile(params)
	if err != nil {
		return nil, &CorruptSnapshotError{Offset: len(snapshotMagic), Message: "invalid id", Cause: err}
	}
	return p, nil
}

func appendSnapshotField(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}
