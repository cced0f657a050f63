package request

import "testing"

func TestFormRequest_Resolvers(t *testing.T) {
	r := FormRequest{Name: "  Plano Mensal  ", Description: " pacote padrão "}
	if got := r.ResolveName(); got != "Plano Mensal" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
	if got := r.ResolveDescription(); got != "pacote padrão" {
		t.Fatalf("expected trimmed description, got %q", got)
	}
}

func TestFormOptionRequest_ResolveSecondaryServiceIDs(t *testing.T) {
	r := FormOptionRequest{
		PrimaryServiceID:    " svc-1 ",
		SecondaryServiceIDs: []string{" svc-2 ", "   ", "svc-3"},
	}
	if got := r.ResolvePrimaryServiceID(); got != "svc-1" {
		t.Fatalf("expected svc-1, got %q", got)
	}
	ids := r.ResolveSecondaryServiceIDs()
	if len(ids) != 2 || ids[0] != "svc-2" || ids[1] != "svc-3" {
		t.Fatalf("unexpected secondary ids: %v", ids)
	}
}
