package physics

import "testing"

func TestGravityAcceleratesDynamicBody(t *testing.T) {
	w := NewWorld()
	w.SetGravity(Vector{Y: -9.8})

	b := NewCircle(1)
	b.SetMass(1)
	w.AddBody(b)

	w.Update(1)

	if b.Velocity().Y != -9.8 {
		t.Fatalf("expected velocity.Y == -9.8 after one second, got %v", b.Velocity().Y)
	}
	if b.Position().Y != -9.8 {
		t.Fatalf("expected position.Y == -9.8 after one second, got %v", b.Position().Y)
	}
}

func TestStaticBodyNeverMoves(t *testing.T) {
	w := NewWorld()
	w.SetGravity(Vector{Y: -9.8})

	b := NewBox(10, 10, 0)
	b.SetType(Static)
	b.SetPosition(Vector{X: 5, Y: 5})
	w.AddBody(b)

	w.Update(10)

	if b.Position() != (Vector{X: 5, Y: 5}) {
		t.Fatalf("expected static body unchanged, got %+v", b.Position())
	}
}

func TestKinematicBodyIgnoresGravity(t *testing.T) {
	w := NewWorld()
	w.SetGravity(Vector{Y: -9.8})

	b := NewCircle(1)
	b.SetType(Kinematic)
	b.SetVelocity(Vector{X: 2})
	w.AddBody(b)

	w.Update(1)

	if b.Velocity() != (Vector{X: 2}) {
		t.Fatalf("expected kinematic velocity unaffected by gravity, got %+v", b.Velocity())
	}
	if b.Position() != (Vector{X: 2}) {
		t.Fatalf("expected kinematic body to move by its own velocity, got %+v", b.Position())
	}
}

func TestRemoveBodyStopsSimulating(t *testing.T) {
	w := NewWorld()
	w.SetGravity(Vector{Y: -1})

	b := NewCircle(1)
	b.SetMass(1)
	w.AddBody(b)
	w.RemoveBody(b)

	if w.BodyCount() != 0 {
		t.Fatalf("expected body count 0 after remove, got %d", w.BodyCount())
	}

	w.Update(5)
	if b.Velocity() != (Vector{}) {
		t.Fatalf("expected removed body untouched by Update, got %+v", b.Velocity())
	}
}

func TestDisabledBodyDoesNotIntegrate(t *testing.T) {
	w := NewWorld()
	w.SetGravity(Vector{Y: -1})

	b := NewCircle(1)
	b.SetMass(1)
	b.SetEnabled(false)
	w.AddBody(b)

	w.Update(5)

	if b.Velocity() != (Vector{}) {
		t.Fatalf("expected disabled body unaffected, got %+v", b.Velocity())
	}
}

func TestMomentOfInertiaHelpers(t *testing.T) {
	b := NewBox(2, 4, 0)
	b.SetMomentumForBox(3, 2, 4)
	want := 3.0 * (2*2 + 4*4) / 12
	if b.Momentum() != want {
		t.Fatalf("box momentum = %v, want %v", b.Momentum(), want)
	}

	c := NewCircle(2)
	c.SetMomentumForCircle(3, 2)
	wantC := 3.0 * 2 * 2 / 2
	if c.Momentum() != wantC {
		t.Fatalf("circle momentum = %v, want %v", c.Momentum(), wantC)
	}
}
