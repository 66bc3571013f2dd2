package core

// MeshData is the JSON frame sent to browser clients.
type MeshData struct {
	Type      string       `json:"type"`
	Kind      string       `json:"kind"`
	Seed      int32        `json:"seed"`
	Vertices  [][3]float32 `json:"vertices"`
	Indices   []int32      `json:"indices"`
	Normals   [][3]float32 `json:"normals,omitempty"`
	UVs       [][2]float32 `json:"uvs,omitempty"`
	Colors    [][4]uint8   `json:"colors,omitempty"`
	MinHeight float32      `json:"minHeight"`
	MaxHeight float32      `json:"maxHeight"`
}

// NewMeshData flattens buffers into a MeshData frame of type "mesh".
func NewMeshData(kind string, seed int32, m *MeshBuffers) MeshData {
	lo, hi := m.HeightRange()
	data := MeshData{
		Type:      "mesh",
		Kind:      kind,
		Seed:      seed,
		Vertices:  make([][3]float32, len(m.Vertices)),
		Indices:   m.Triangles,
		MinHeight: lo,
		MaxHeight: hi,
	}
	for i, v := range m.Vertices {
		data.Vertices[i] = [3]float32(v)
	}
	if len(m.Normals) > 0 {
		data.Normals = make([][3]float32, len(m.Normals))
		for i, n := range m.Normals {
			data.Normals[i] = [3]float32(n)
		}
	}
	if len(m.UVs) > 0 {
		data.UVs = make([][2]float32, len(m.UVs))
		for i, uv := range m.UVs {
			data.UVs[i] = [2]float32(uv)
		}
	}
	if len(m.Colors) > 0 {
		data.Colors = make([][4]uint8, len(m.Colors))
		for i, c := range m.Colors {
			data.Colors[i] = [4]uint8{c.R, c.G, c.B, c.A}
		}
	}
	return data
}

// ErrorData is sent to a single client whose request could not be served.
type ErrorData struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
