package usecase

import "travel-ledger-service/internal/domain/entity"

// annotationSet folds repeated annotations of the same kind and subject,
// preserving first-seen order
type annotationSet struct {
	items []entity.Annotation
	index map[string]int
}

func newAnnotationSet() *annotationSet {
	return &annotationSet{index: make(map[string]int)}
}

func (s *annotationSet) add(kind entity.AnnotationKind, subject, detail string) {
	key := string(kind) + "|" + subject
	if i, ok := s.index[key]; ok {
		s.items[i].Count++
		return
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, entity.Annotation{Kind: kind, Subject: subject, Detail: detail, Count: 1})
}

func (s *annotationSet) addAll(annotations []entity.Annotation) {
	for _, a := range annotations {
		key := string(a.Kind) + "|" + a.Subject
		if i, ok := s.index[key]; ok {
			s.items[i].Count += a.Count
			continue
		}
		s.index[key] = len(s.items)
		s.items = append(s.items, a)
	}
}

func (s *annotationSet) list() []entity.Annotation {
	out := make([]entity.Annotation, len(s.items))
	copy(out, s.items)
	return out
}
