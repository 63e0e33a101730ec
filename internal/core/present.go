package core

// VisualKind identifies what a visual handle depicts.
type VisualKind int

const (
	VisualDragon VisualKind = iota
	VisualEnemy
	VisualProjectile
	VisualParticle
)

// String returns the visual kind name.
func (k VisualKind) String() string {
	switch k {
	case VisualDragon:
		return "dragon"
	case VisualEnemy:
		return "enemy"
	case VisualProjectile:
		return "projectile"
	case VisualParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Style carries the presentation hints for a new visual.
type Style struct {
	Color   Color
	Size    float64 // Approximate radius in world units
	Variant string  // Kind-specific sub-type (enemy type name)
}

// Handle is an opaque reference to a visual owned by the Presenter.
// The zero Handle is never issued.
type Handle uint64

// Presenter is the rendering layer the simulation drives.
// The simulation never reads back transform state it didn't set.
type Presenter interface {
	CreateVisual(kind VisualKind, style Style) Handle
	SetPosition(h Handle, pos Vec3)
	SetRotation(h Handle, rot Vec3)
	SetOpacity(h Handle, opacity float64)
	RemoveVisual(h Handle)
	SetCamera(pos, target Vec3)
	RenderFrame()
	OnResize(aspect float64, width, height int)
}

// HUD receives one-way status notifications from the simulation.
type HUD interface {
	UpdateScore(score int)
	UpdateHealth(percent int)
	UpdateWave(wave int)
	ShowGameOver(finalScore int)
}

// Outputs bundles the collaborators a game writes to.
// Nil fields are replaced with no-op implementations.
type Outputs struct {
	Presenter Presenter
	HUD       HUD
}

// WithDefaults returns o with nil collaborators replaced by no-ops.
func (o Outputs) WithDefaults() Outputs {
	if o.Presenter == nil {
		o.Presenter = &NopPresenter{}
	}
	if o.HUD == nil {
		o.HUD = NopHUD{}
	}
	return o
}

// NopPresenter issues handles and discards everything else.
// Used for headless runs.
type NopPresenter struct {
	next Handle
}

func (p *NopPresenter) CreateVisual(VisualKind, Style) Handle {
	p.next++
	return p.next
}
func (p *NopPresenter) SetPosition(Handle, Vec3) {}
func (p *NopPresenter) SetRotation(Handle, Vec3) {}
func (p *NopPresenter) SetOpacity(Handle, float64) {}
func (p *NopPresenter) RemoveVisual(Handle) {}
func (p *NopPresenter) SetCamera(Vec3, Vec3) {}
func (p *NopPresenter) RenderFrame() {}
func (p *NopPresenter) OnResize(float64, int, int) {}

// NopHUD ignores all notifications.
type NopHUD struct{}

func (NopHUD) UpdateScore(int) {}
func (NopHUD) UpdateHealth(int) {}
func (NopHUD) UpdateWave(int) {}
func (NopHUD) ShowGameOver(int) {}
