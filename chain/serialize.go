package chain

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// The structured forms below are all the same shape: a bare unsigned 16-bit
// integer, symmetric with FromUint16/Uint16. No tags, no nesting.

func (c Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Uint16())
}

func (c *Chain) UnmarshalJSON(data []byte) error {
	var n uint16
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = FromUint16(n)
	return nil
}

// MarshalBSONValue encodes the chain as a BSON int32; BSON has no 16-bit
// integer type and every uint16 fits in an int32.
func (c Chain) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(int32(c.Uint16()))
}

func (c *Chain) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	var n int32
	if err := raw.Unmarshal(&n); err != nil {
		return err
	}
	if n < 0 || n > 0xFFFF {
		return fmt.Errorf("chain id out of range: %d", n)
	}
	*c = FromUint16(uint16(n))
	return nil
}

func (c Chain) MarshalYAML() (interface{}, error) {
	return c.Uint16(), nil
}

func (c *Chain) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var n uint16
	if err := unmarshal(&n); err != nil {
		return err
	}
	*c = FromUint16(n)
	return nil
}
