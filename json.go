// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cow

import "encoding/json"

// Serialization adapter. A Cow marshals as its viewed content and
// unmarshals by materializing an owned buffer, so codecs never observe
// the ownership state. Implemented against the standard
// [json.Marshaler]/[json.Unmarshaler] contract, which third-party JSON
// engines honor as well.

// MarshalJSON encodes the viewed content.
func (c Cow[V, O, E, F, S, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.view())
}

// UnmarshalJSON decodes into a freshly allocated buffer and stores it
// as owned. Deserialized values are always materialized as owned
// (except for empty content, which falls into the zero-capacity
// collision and reads back as borrowed).
func (c *Cow[V, O, E, F, S, C]) UnmarshalJSON(data []byte) error {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	var s S
	*c = Owned[V, O, E, F, S, C](s.CloneView(v))
	return nil
}
