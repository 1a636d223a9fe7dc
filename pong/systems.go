package pong

import (
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/fixed"
	"github.com/plus3/pong/input"
)

// InputSystem samples the pad once per frame.
type InputSystem struct {
	Controller ecs.Singleton[Controller]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	if c := s.Controller.Get(); c != nil && c.ButtonController != nil {
		c.Update()
	}
}

// SteerSystem turns the D-pad into the ball's velocity for the next frame,
// doubled while A is held.
type SteerSystem struct {
	Balls ecs.Query[struct {
		*Ball
		*Velocity
	}]
	Controller ecs.Singleton[Controller]
	Settings   ecs.Singleton[Settings]
}

func (s *SteerSystem) Execute(frame *ecs.UpdateFrame) {
	controller := s.Controller.Get()
	settings := s.Settings.Get()
	if controller == nil || settings == nil {
		return
	}

	velocity := fixed.NumVec(controller.XTri().Int(), controller.YTri().Int())
	if controller.IsPressed(input.A) {
		velocity.X = velocity.X.MulInt(settings.Config.Boost)
		velocity.Y = velocity.Y.MulInt(settings.Config.Boost)
	}

	for ball := range s.Balls.Values() {
		ball.Velocity.Vector2D = velocity
	}
}

// BallMovementSystem advances the ball by its velocity and keeps it on
// screen.
type BallMovementSystem struct {
	Balls ecs.Query[struct {
		*Ball
		*Position
		*Velocity
	}]
}

func (s *BallMovementSystem) Execute(frame *ecs.UpdateFrame) {
	lo := fixed.NumVec(0, 0)
	hi := fixed.NumVec(ballMaxX, ballMaxY)

	for ball := range s.Balls.Values() {
		ball.Position.Vector2D = ball.Position.Add(ball.Velocity.Vector2D).Clamp(lo, hi)
	}
}

// WallBounceSystem reflects the ball off whichever screen edge it rests on.
// A ball on an edge always ends up heading back into the court, so it can
// never stick to a wall. With scoring on, reaching a side edge while heading
// out awards the point to the other side.
type WallBounceSystem struct {
	Balls ecs.Query[struct {
		*Ball
		*Position
		*Velocity
	}]
	Settings ecs.Singleton[Settings]
	Score    ecs.Singleton[Score]
}

func (s *WallBounceSystem) Execute(frame *ecs.UpdateFrame) {
	settings := s.Settings.Get()
	scoring := settings != nil && settings.Features.Scoring
	score := s.Score.Get()

	for ball := range s.Balls.Values() {
		pos, vel := ball.Position, ball.Velocity

		switch pos.X {
		case 0:
			if scoring && score != nil && vel.X < 0 {
				score.Right++
			}
			vel.X = vel.X.Abs()
		case fixed.Int(ballMaxX):
			if scoring && score != nil && vel.X > 0 {
				score.Left++
			}
			vel.X = -vel.X.Abs()
		}

		switch pos.Y {
		case 0:
			vel.Y = vel.Y.Abs()
		case fixed.Int(ballMaxY):
			vel.Y = -vel.Y.Abs()
		}
	}
}

// PaddleControlSystem moves player paddles up and down with the D-pad.
type PaddleControlSystem struct {
	Paddles ecs.Query[struct {
		*Paddle
		*PlayerControlled
		*Position
	}]
	Controller ecs.Singleton[Controller]
	Settings   ecs.Singleton[Settings]
}

func (s *PaddleControlSystem) Execute(frame *ecs.UpdateFrame) {
	controller := s.Controller.Get()
	settings := s.Settings.Get()
	if controller == nil || settings == nil {
		return
	}

	step := settings.Config.PaddleSpeed.MulInt(controller.YTri().Int())
	if controller.IsPressed(input.A) {
		step = step.MulInt(settings.Config.Boost)
	}

	for paddle := range s.Paddles.Values() {
		paddle.Position.Y = fixed.Clamp(paddle.Position.Y+step, 0, fixed.Int(paddleMaxY))
	}
}

// CPUPaddleSystem moves computer paddles so their centre follows the
// ball's centre, at most CPUSpeed pixels per frame.
type CPUPaddleSystem struct {
	Paddles ecs.Query[struct {
		*Paddle
		*CPUControlled
		*Position
	}]
	Balls ecs.Query[struct {
		*Ball
		*Position
	}]
	Settings ecs.Singleton[Settings]
}

func (s *CPUPaddleSystem) Execute(frame *ecs.UpdateFrame) {
	settings := s.Settings.Get()
	ball, ok := s.Balls.First()
	if settings == nil || !ok {
		return
	}

	target := ball.Position.Y + fixed.Int(SpriteSize/2)
	speed := settings.Config.CPUSpeed

	for paddle := range s.Paddles.Values() {
		centre := paddle.Position.Y + fixed.Int(PaddleHeight/2)
		step := fixed.Clamp(target-centre, -speed, speed)
		paddle.Position.Y = fixed.Clamp(paddle.Position.Y+step, 0, fixed.Int(paddleMaxY))
	}
}

// PaddleCollisionSystem sends the ball back towards the opposite side when
// it touches a paddle. With angled hits the vertical velocity becomes the
// distance between the two centres divided by 16, so the paddle edges
// return steeper shots than its middle.
type PaddleCollisionSystem struct {
	Balls ecs.Query[struct {
		*Ball
		*Position
		*Velocity
	}]
	Paddles  ecs.Query[paddleView]
	Settings ecs.Singleton[Settings]
}

func (s *PaddleCollisionSystem) Execute(frame *ecs.UpdateFrame) {
	settings := s.Settings.Get()
	if settings == nil {
		return
	}

	for ball := range s.Balls.Values() {
		box := ballBox(ball.Position.Vector2D)

		for paddle := range s.Paddles.Values() {
			if !paddleBox(paddle.Position.Vector2D).Touches(box) {
				continue
			}

			vel := ball.Velocity
			speed := vel.X.Abs()
			if settings.Features.AngledHits {
				speed = settings.Config.BallSpeed
				offset := fixed.Int(int(box.Center().Y - paddleBox(paddle.Position.Vector2D).Center().Y))
				vel.Y = offset.Div(fixed.Int(hitOffsetDivisor))
			}

			if paddle.Paddle.Side == SideLeft {
				vel.X = speed
			} else {
				vel.X = -speed
			}
		}
	}
}

// SpriteSystem rebuilds the DrawList from the ball and paddles.
type SpriteSystem struct {
	Balls ecs.Query[struct {
		*Ball
		*Position
	}]
	Paddles  ecs.Query[paddleView]
	DrawList ecs.Singleton[DrawList]

	paddles []paddleView
}

func (s *SpriteSystem) Execute(frame *ecs.UpdateFrame) {
	list := s.DrawList.Get()
	if list == nil {
		return
	}
	list.Objects = list.Objects[:0]

	for ball := range s.Balls.Values() {
		pos := fixed.Floor(ball.Position.Vector2D)
		list.Objects = append(list.Objects, Object{Sprite: SpriteBall, X: pos.X, Y: pos.Y})
	}

	s.paddles = s.paddles[:0]
	for paddle := range s.Paddles.Values() {
		s.paddles = append(s.paddles, paddle)
	}
	sortPaddles(s.paddles)

	for _, paddle := range s.paddles {
		pos := fixed.Floor(paddle.Position.Vector2D)
		list.Objects = append(list.Objects, paddleObjects(pos.X, pos.Y, paddle.Paddle.Hflip)...)
	}
}
