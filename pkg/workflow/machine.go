package workflow

import (
	"errors"
	"fmt"

	"content-variation-be/internal/entity"
)

var (
	// ErrBusy is returned when a mutating transition is attempted while an
	// async operation is in flight.
	ErrBusy = errors.New("another operation is in progress")

	// ErrWrongStep is returned when a transition is attempted from a step it
	// is not valid in.
	ErrWrongStep = errors.New("action not valid in current step")

	ErrNoImages      = errors.New("no images provided")
	ErrTooManyImages = fmt.Errorf("maximum %d images allowed", MaxImages)
	ErrNoSlides      = errors.New("no slides to compile")
)

// BeginExtraction starts the extraction pipeline: valid only from the upload
// step with 1-10 images. Clears any prior error and raises the loading gate.
func (s *Session) BeginExtraction(images []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State.IsLoading {
		return ErrBusy
	}
	if s.State.Step != StepUpload {
		return ErrWrongStep
	}
	if len(images) == 0 {
		return ErrNoImages
	}
	if len(images) > MaxImages {
		return ErrTooManyImages
	}
	s.State.Images = images
	s.State.Error = nil
	s.State.IsLoading = true
	return nil
}

// ApplyExtraction completes a successful extraction+analysis run: moves to
// the configure step with slides and analysis populated, and seeds the pain
// point and tone from the analysis.
func (s *Session) ApplyExtraction(slides []entity.ConfiguredSlide, analysis *entity.AnalysisResult, detectedBrand string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.State.Step = StepConfigure
	s.State.Slides = slides
	s.State.Analysis = analysis
	s.State.Brand = detectedBrand
	s.State.PainPoint = entity.PainPointConfig{
		Original: analysis.FormatAnalysis.TargetPainPoint,
		Selected: analysis.FormatAnalysis.TargetPainPoint,
		IsCustom: false,
	}
	s.State.Tone = entity.ToneConfig{
		Mode:                entity.ToneMatched,
		DetectedDescription: analysis.ToneAnalysis.Description,
	}
	s.State.IsLoading = false
}

// Fail records an async failure: the state machine stays where it was, the
// error becomes visible, and the loading gate drops so the user can retry.
func (s *Session) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.State.IsLoading = false
	s.State.Error = &message
}

// DismissError clears the visible error without touching anything else.
func (s *Session) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.State.Error = nil
}

// UpdateDecision replaces the decision of the slide with the given number.
// Unknown slide numbers are a no-op. Decisions are deliberately not gated on
// loading: they are cheap, local and cannot race the LLM calls.
func (s *Session) UpdateDecision(slideNumber int, decision entity.SlideDecision) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State.Step != StepConfigure {
		return ErrWrongStep
	}
	for i := range s.State.Slides {
		if s.State.Slides[i].SlideNumber == slideNumber {
			s.State.Slides[i].Decision = decision
			break
		}
	}
	return nil
}

// UpdatePainPoint changes the selection. The detected original is immutable
// after extraction and always carried over.
func (s *Session) UpdatePainPoint(selected string, isCustom bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.configurable(); err != nil {
		return err
	}
	s.State.PainPoint = entity.PainPointConfig{
		Original: s.State.PainPoint.Original,
		Selected: selected,
		IsCustom: isCustom,
	}
	return nil
}

// UpdateTone changes the tone selection. The detected description is
// immutable after extraction and always carried over.
func (s *Session) UpdateTone(mode entity.ToneMode, customInput string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.configurable(); err != nil {
		return err
	}
	s.State.Tone = entity.ToneConfig{
		Mode:                mode,
		DetectedDescription: s.State.Tone.DetectedDescription,
		CustomInput:         customInput,
	}
	return nil
}

func (s *Session) UpdateBrand(brand string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.configurable(); err != nil {
		return err
	}
	s.State.Brand = brand
	return nil
}

func (s *Session) UpdateVariationCount(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.configurable(); err != nil {
		return err
	}
	s.State.VariationCount = ClampVariationCount(n)
	return nil
}

// configurable is called with the mutex held.
func (s *Session) configurable() error {
	if s.State.IsLoading {
		return ErrBusy
	}
	if s.State.Step != StepConfigure {
		return ErrWrongStep
	}
	return nil
}

// BeginCompile starts the compile call: valid only from the configure step
// with a non-empty slide list.
func (s *Session) BeginCompile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State.IsLoading {
		return ErrBusy
	}
	if s.State.Step != StepConfigure {
		return ErrWrongStep
	}
	if len(s.State.Slides) == 0 {
		return ErrNoSlides
	}
	s.State.Error = nil
	s.State.IsLoading = true
	return nil
}

// ApplyCompiled completes a successful compile: moves to the output step with
// the prompt text populated.
func (s *Session) ApplyCompiled(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.State.Step = StepOutput
	s.State.CompiledPrompt = &prompt
	s.State.IsLoading = false
}

// BackToConfig returns to the configure step, discarding the compiled prompt.
// Anything not explicitly saved is gone. Already being on the configure step
// is a no-op, not an error.
func (s *Session) BackToConfig() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State.Step == StepConfigure {
		return nil
	}
	if s.State.Step != StepOutput {
		return ErrWrongStep
	}
	s.State.Step = StepConfigure
	s.State.CompiledPrompt = nil
	return nil
}

// Reset restores the documented initial state from anywhere, discarding all
// in-progress work.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.State = initialState()
}

// LoadProject replaces the session wholesale from a saved project. The step
// is forced to configure and any compiled prompt is cleared, so loading then
// navigating back is a no-op on the loaded configuration.
func (s *Session) LoadProject(p *entity.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.State = State{
		Step:           StepConfigure,
		Images:         p.Images,
		Slides:         p.Slides,
		Analysis:       p.Analysis,
		PainPoint:      p.PainPoint,
		Tone:           p.Tone,
		Brand:          p.Brand,
		VariationCount: ClampVariationCount(p.VariationCount),
		CompiledPrompt: nil,
		IsLoading:      false,
		Error:          nil,
	}
}
