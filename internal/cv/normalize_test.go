package cv

import (
	"reflect"
	"testing"
)

func TestDecodeModelCurrentShape(t *testing.T) {
	data := []byte(`{
		"name": "Jane",
		"languages": [{"name":"English","level":"native"}],
		"extras": [{"category":"certifications","items":["CKA"]}]
	}`)
	m, err := DecodeModel(data)
	if err != nil {
		t.Fatalf("DecodeModel: %v", err)
	}
	if m.Name != "Jane" {
		t.Errorf("name = %q", m.Name)
	}
	want := []Language{{Name: "English", Level: "native"}}
	if !reflect.DeepEqual(m.Languages, want) {
		t.Errorf("languages = %+v", m.Languages)
	}
	wantExtras := []ExtrasGroup{{Category: ExtrasCertifications, Items: []string{"CKA"}}}
	if !reflect.DeepEqual(m.Extras, wantExtras) {
		t.Errorf("extras = %+v", m.Extras)
	}
}

func TestDecodeModelLegacyStringArrays(t *testing.T) {
	data := []byte(`{
		"name": "Jane",
		"languages": ["English", " Svenska ", ""],
		"extras": ["AWS Cert", "Award"]
	}`)
	m, err := DecodeModel(data)
	if err != nil {
		t.Fatalf("DecodeModel: %v", err)
	}
	wantLangs := []Language{{Name: "English"}, {Name: "Svenska"}}
	if !reflect.DeepEqual(m.Languages, wantLangs) {
		t.Errorf("languages = %+v", m.Languages)
	}
	wantExtras := []ExtrasGroup{{Category: ExtrasOther, Items: []string{"AWS Cert", "Award"}}}
	if !reflect.DeepEqual(m.Extras, wantExtras) {
		t.Errorf("extras = %+v", m.Extras)
	}
}

func TestDecodeModelNullAndMissing(t *testing.T) {
	for _, data := range []string{`{}`, `{"languages":null,"extras":null}`} {
		m, err := DecodeModel([]byte(data))
		if err != nil {
			t.Fatalf("DecodeModel(%s): %v", data, err)
		}
		if m.Languages != nil || m.Extras != nil {
			t.Errorf("expected nil lists for %s, got %+v", data, m)
		}
	}
}

func TestDecodeModelInvalid(t *testing.T) {
	if _, err := DecodeModel([]byte(`{"languages": 42}`)); err == nil {
		t.Fatal("expected error")
	}
}

func TestAddExtrasItem(t *testing.T) {
	m := New()
	m.AddExtrasItem(ExtrasCourses, "Algorithms")
	m.AddExtrasItem(ExtrasCourses, "Databases")
	m.AddExtrasItem("", "Misc item")
	m.AddExtrasItem(ExtrasOther, "  ")
	want := []ExtrasGroup{
		{Category: ExtrasCourses, Items: []string{"Algorithms", "Databases"}},
		{Category: ExtrasOther, Items: []string{"Misc item"}},
	}
	if !reflect.DeepEqual(m.Extras, want) {
		t.Errorf("extras = %+v, want %+v", m.Extras, want)
	}
}
