package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edurecords/portal/core/auth"
)

func registerPages(e *echo.Echo) {
	e.GET("/", loginPage)
	e.GET("/admin", adminPage, pageGuard(auth.RoleAdmin))
	e.GET("/dashboard", dashboardPage, pageGuard(auth.RoleStudent))
}

func loginPage(ctx echo.Context) error {
	return ctx.HTML(http.StatusOK, loginHTML)
}

func adminPage(ctx echo.Context) error {
	return ctx.HTML(http.StatusOK, adminHTML)
}

func dashboardPage(ctx echo.Context) error {
	return ctx.HTML(http.StatusOK, dashboardHTML)
}

const loginHTML = `<!DOCTYPE html>
<html>
<head><title>Portal - Login</title></head>
<body>
<h2>Student Records Portal</h2>
<form id="login">
  <input name="username" placeholder="Username" required>
  <input name="password" type="password" placeholder="Password" required>
  <button type="submit">Login</button>
</form>
<p id="msg"></p>
<script>
document.getElementById('login').onsubmit = async function (e) {
  e.preventDefault();
  const f = new FormData(this);
  const res = await fetch('/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({username: f.get('username'), password: f.get('password')})
  });
  const data = await res.json();
  if (data.success) {
    window.location = data.role === 'admin' ? '/admin' : '/dashboard';
  } else {
    document.getElementById('msg').textContent = 'Invalid credentials';
  }
};
</script>
</body>
</html>`

const adminHTML = `<!DOCTYPE html>
<html>
<head><title>Portal - Admin</title></head>
<body>
<h2>Admin - Enter Student Record</h2>
<a href="/logout">Logout</a>
<form id="save">
  <input name="roll" placeholder="Roll" required>
  <input name="name" placeholder="Name" required>
  <input name="section" placeholder="Section" required>
  <input name="attendance" type="number" placeholder="Attendance %" required>
  <input name="assignments" type="number" placeholder="Assignments" required>
  <select name="exam">
    <option value="cat1">CAT 1</option>
    <option value="cat2">CAT 2</option>
    <option value="model">Model</option>
  </select>
  <input name="marks" placeholder="6 marks, comma separated" required>
  <button type="submit">Save</button>
</form>
<p id="msg"></p>
<script>
document.getElementById('save').onsubmit = async function (e) {
  e.preventDefault();
  const f = new FormData(this);
  const res = await fetch('/admin/save', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({
      roll: f.get('roll'),
      name: f.get('name'),
      section: f.get('section'),
      attendance: parseInt(f.get('attendance'), 10),
      assignments: parseInt(f.get('assignments'), 10),
      exam: f.get('exam'),
      marks: f.get('marks').split(',').map(function (m) { return parseInt(m.trim(), 10); })
    })
  });
  const data = await res.json();
  document.getElementById('msg').textContent = data.message || JSON.stringify(data);
};
</script>
</body>
</html>`

const dashboardHTML = `<!DOCTYPE html>
<html>
<head><title>Portal - Dashboard</title></head>
<body>
<h2>My Records</h2>
<a href="/logout">Logout</a>
<div id="profile"></div>
<div id="marks"></div>
<div id="prediction"></div>
<script>
(async function () {
  const res = await fetch('/student/data');
  if (res.ok) {
    const body = await res.json();
    const d = body.data;
    document.getElementById('profile').innerHTML =
      '<p>' + d.roll + ' - ' + d.name + ' (' + d.section + ')<br>' +
      'Attendance: ' + d.attendance + '% | Assignments: ' + d.assignments + '</p>';
    document.getElementById('marks').innerHTML =
      ['cat1', 'cat2', 'model'].map(function (exam) {
        return '<p>' + exam + ': ' + (d[exam].length ? d[exam].join(', ') : '-') + '</p>';
      }).join('');
  } else {
    document.getElementById('profile').textContent = 'No data yet.';
  }

  const pres = await fetch('/student/predict');
  if (pres.ok) {
    const p = await pres.json();
    document.getElementById('prediction').innerHTML =
      '<p>Average: ' + (p.average_marks !== undefined ? p.average_marks : '--') +
      ' | Performance: ' + p.prediction + '</p>';
  }
})();
</script>
</body>
</html>`
