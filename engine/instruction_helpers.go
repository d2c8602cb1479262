package engine

// The functions below are thin convenience wrappers over the OpClone/OpTake
// struct literals for the operators programs reach for constantly — the Go
// equivalent of the source's reading::add_clone/mutating::add_take helpers
// used throughout examples/fib.rs.

func AddClone(id Id) Instruction { return OpCloneInstr{Operation: OpAdd, Id: id} }
func SubClone(id Id) Instruction { return OpCloneInstr{Operation: OpSub, Id: id} }
func MulClone(id Id) Instruction { return OpCloneInstr{Operation: OpMul, Id: id} }
func DivClone(id Id) Instruction { return OpCloneInstr{Operation: OpDiv, Id: id} }
func EqClone(id Id) Instruction  { return OpCloneInstr{Operation: OpEq, Id: id} }
func LtClone(id Id) Instruction  { return OpCloneInstr{Operation: OpLt, Id: id} }
func LeClone(id Id) Instruction  { return OpCloneInstr{Operation: OpLe, Id: id} }
func GtClone(id Id) Instruction  { return OpCloneInstr{Operation: OpGt, Id: id} }
func GeClone(id Id) Instruction  { return OpCloneInstr{Operation: OpGe, Id: id} }

func AddTake(id Id) Instruction { return OpTakeInstr{Operation: OpAdd, Id: id} }
func SubTake(id Id) Instruction { return OpTakeInstr{Operation: OpSub, Id: id} }
func MulTake(id Id) Instruction { return OpTakeInstr{Operation: OpMul, Id: id} }
func DivTake(id Id) Instruction { return OpTakeInstr{Operation: OpDiv, Id: id} }

func AddOp(rhs Value) Instruction { return OpInstr{Operation: OpAdd, Rhs: rhs} }
func SubOp(rhs Value) Instruction { return OpInstr{Operation: OpSub, Rhs: rhs} }
func MulOp(rhs Value) Instruction { return OpInstr{Operation: OpMul, Rhs: rhs} }
func DivOp(rhs Value) Instruction { return OpInstr{Operation: OpDiv, Rhs: rhs} }
func EqOp(rhs Value) Instruction  { return OpInstr{Operation: OpEq, Rhs: rhs} }

// PutInt, PutFloat, PutString and PutBool are Put literal constructors for
// the scalar kinds a program body builds most often.
func PutInt(i int64) Instruction    { return Put{V: Int(i)} }
func PutFloat(f float64) Instruction { return Put{V: Float(f)} }
func PutString(s string) Instruction { return Put{V: String(s)} }
func PutBool(b bool) Instruction     { return Put{V: Bool(b)} }
