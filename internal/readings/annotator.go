package readings

import (
	"context"

	"go.uber.org/zap"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
)

// Annotator decorates lesson content with readings for the lesson's
// language: bracket furigana for Japanese, tone-marked pinyin for
// Chinese, nothing for alphabetic scripts. A failed sidecar call logs a
// warning and returns an error the caller may treat as non-fatal; the
// content stays usable without readings.
type Annotator struct {
	furigana *FuriganaClient
	pinyin   *PinyinClient
	logger   *zap.Logger
}

// NewAnnotator creates an Annotator. A nil logger disables logging.
func NewAnnotator(furigana *FuriganaClient, pinyin *PinyinClient, logger *zap.Logger) *Annotator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Annotator{furigana: furigana, pinyin: pinyin, logger: logger}
}

// target is one reading slot to fill: the source text and a setter
// writing the reading back into the content.
type target struct {
	text string
	set  func(string)
}

// AnnotateCoreItems fills Reading on each item and its components.
// Slots that already carry a reading are left alone.
func (a *Annotator) AnnotateCoreItems(ctx context.Context, items []content.CoreItem, c lang.Code) error {
	var targets []target
	for i := range items {
		it := &items[i]
		if it.Reading == "" {
			targets = append(targets, target{it.Text, func(s string) { it.Reading = s }})
		}
		for j := range it.Components {
			comp := &it.Components[j]
			if comp.Reading == "" {
				targets = append(targets, target{comp.Text, func(s string) { comp.Reading = s }})
			}
		}
	}
	return a.annotate(ctx, targets, c)
}

// AnnotateExchanges fills Reading on each exchange and its vocabulary.
func (a *Annotator) AnnotateExchanges(ctx context.Context, exchanges []content.Exchange, c lang.Code) error {
	var targets []target
	for i := range exchanges {
		ex := &exchanges[i]
		if ex.Reading == "" {
			targets = append(targets, target{ex.Text, func(s string) { ex.Reading = s }})
		}
		for j := range ex.Vocabulary {
			v := &ex.Vocabulary[j]
			if v.Reading == "" {
				targets = append(targets, target{v.Word, func(s string) { v.Reading = s }})
			}
		}
	}
	return a.annotate(ctx, targets, c)
}

func (a *Annotator) annotate(ctx context.Context, targets []target, c lang.Code) error {
	if len(targets) == 0 {
		return nil
	}
	switch c {
	case lang.Japanese:
		return a.annotateFurigana(ctx, targets)
	case lang.Chinese:
		return a.annotatePinyin(ctx, targets)
	default:
		return nil
	}
}

// annotateFurigana fills targets one call at a time; the sidecar has no
// batch endpoint. The first failure abandons the pass.
func (a *Annotator) annotateFurigana(ctx context.Context, targets []target) error {
	for _, t := range targets {
		res, err := a.furigana.Generate(ctx, t.text)
		if err != nil {
			a.logger.Warn("furigana annotation failed, shipping without readings",
				zap.String("text", t.text),
				zap.Error(err))
			return err
		}
		t.set(res.Furigana)
	}
	return nil
}

// annotatePinyin fills all targets with one batch call.
func (a *Annotator) annotatePinyin(ctx context.Context, targets []target) error {
	texts := make([]string, len(targets))
	for i, t := range targets {
		texts[i] = t.text
	}
	results, err := a.pinyin.GenerateBatch(ctx, texts)
	if err != nil {
		a.logger.Warn("pinyin annotation failed, shipping without readings",
			zap.Int("text_count", len(texts)),
			zap.Error(err))
		return err
	}
	for i, t := range targets {
		t.set(results[i].PinyinToneMarks)
	}
	return nil
}
