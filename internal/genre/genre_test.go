package genre

import "testing"

func TestClassifyComedy(t *testing.T) {
	got := Classify("film komediowy", "Dzien swira")
	if got != Comedy {
		t.Errorf("expected Komedia, got %s", got)
	}
}

func TestClassifyDrama(t *testing.T) {
	got := Classify("film obyczajowy", "Cisza")
	if got != Drama {
		t.Errorf("expected Dramat, got %s", got)
	}
}

func TestClassifyAction(t *testing.T) {
	got := Classify("film sensacyjny", "Psy")
	if got != Action {
		t.Errorf("expected Sensacyjny, got %s", got)
	}
}

func TestClassifyDocumentary(t *testing.T) {
	got := Classify("film dokumentalny", "Planeta Ziemia")
	if got != Documentary {
		t.Errorf("expected Dokument, got %s", got)
	}
}

func TestClassifyFromTitle(t *testing.T) {
	// Category gives nothing away; the title carries the signal.
	got := Classify("film", "Horror w Wesolych Bagniskach")
	if got != Horror {
		t.Errorf("expected Horror, got %s", got)
	}
}

func TestClassifyCategoryOutweighsTitle(t *testing.T) {
	// "komedia" in category (2 points) beats "thriller" in title (1 point).
	got := Classify("komedia", "Thriller wieczoru")
	if got != Comedy {
		t.Errorf("expected Komedia, got %s", got)
	}
}

func TestClassifyFallback(t *testing.T) {
	got := Classify("film fabularny", "Tajemniczy obraz")
	if got != Film {
		t.Errorf("expected fallback Film, got %s", got)
	}
}

func TestAllIncludesFallbackLast(t *testing.T) {
	all := All()
	if len(all) == 0 || all[len(all)-1] != Film {
		t.Errorf("expected Film as last genre, got %v", all)
	}
}
